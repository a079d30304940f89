// Package api provides the REST API server for pgm2sp303
package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/james-see/pgm2sp303/pkg/mpc"
	"github.com/james-see/pgm2sp303/pkg/wavkit"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title pgm2sp303 API
// @version 1.0
// @description API for converting MPC1000 programs to SP-303 banks and padding short samples
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/info", info)
		v1.POST("/program/inspect", handleInspect)
		v1.POST("/program/padmap", handlePadMap)
		v1.POST("/wav/pad", handleWavPad)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pgm2sp303",
	})
}

// info godoc
// @Summary Conversion defaults
// @Description Returns the bank scheme and preprocessor defaults
// @Tags info
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/info [get]
func info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"banks":           mpc.BankNames,
		"pads_per_bank":   mpc.PadsPerBank,
		"min_duration_ms": wavkit.DefaultMinDuration * 1000,
		"sample_rate":     wavkit.RequiredSampleRate,
		"bit_depth":       wavkit.RequiredBitDepth,
	})
}

type padInfo struct {
	Pad        int    `json:"pad"`
	Bank       string `json:"bank"`
	BankSlot   int    `json:"bank_slot"`
	SampleName string `json:"sample_name,omitempty"`
	MIDINote   uint8  `json:"midi_note,omitempty"`
	Assigned   bool   `json:"assigned"`
}

// handleInspect godoc
// @Summary Inspect an MPC1000 program file
// @Description Upload a .pgm file and receive its pad assignments as JSON
// @Tags program
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true ".pgm file to inspect"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/program/inspect [post]
func handleInspect(c *gin.Context) {
	prog, ok := parseUploadedProgram(c)
	if !ok {
		return
	}

	pads := make([]padInfo, 0, mpc.NumPads)
	for _, pad := range prog.Pads {
		pads = append(pads, padInfo{
			Pad:        pad.Number,
			Bank:       pad.Bank(),
			BankSlot:   pad.BankSlot(),
			SampleName: pad.SampleName,
			MIDINote:   pad.MIDINote,
			Assigned:   pad.Assigned(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"header":   prog.Header,
		"assigned": len(prog.AssignedPads()),
		"pads":     pads,
	})
}

// handlePadMap godoc
// @Summary Export a pad audition MIDI file
// @Description Upload a .pgm file and receive a Standard MIDI File that hits each assigned pad
// @Tags program
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true ".pgm file to convert"
// @Param tempo query number false "Tempo in BPM (default: 120)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/program/padmap [post]
func handlePadMap(c *gin.Context) {
	prog, ok := parseUploadedProgram(c)
	if !ok {
		return
	}

	tempo, _ := strconv.ParseFloat(c.DefaultQuery("tempo", "120"), 64)

	data, err := mpc.AuditionSMF(prog, tempo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=padmap.mid")
	c.Data(http.StatusOK, "audio/midi", data)
}

// handleWavPad godoc
// @Summary Pad a short WAV sample
// @Description Upload a WAV file; if it is shorter than the minimum duration, silence is appended
// @Tags wav
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "WAV file to pad"
// @Param min_ms query number false "Minimum duration in milliseconds (default: 110)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/wav/pad [post]
func handleWavPad(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	minMs, err := strconv.ParseFloat(c.DefaultQuery("min_ms", "110"), 64)
	if err != nil || minMs <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_ms"})
		return
	}

	// The decoder needs a seekable file, so stage the upload on disk
	tmpDir, err := os.MkdirTemp("", "pgm2sp303")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	tmpPath := filepath.Join(tmpDir, "upload.wav")
	out, err := os.Create(tmpPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := io.Copy(out, file); err != nil {
		_ = out.Close()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	_ = out.Close()

	asset, err := wavkit.ReadFile(tmpPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not a readable WAV file"})
		return
	}

	wavkit.PadToMinimum(asset, minMs/1000.0)

	paddedPath := filepath.Join(tmpDir, "padded.wav")
	if err := wavkit.WriteFile(paddedPath, asset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := os.ReadFile(paddedPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filepath.Base(header.Filename)))
	for _, flag := range wavkit.CompatFlags(asset) {
		c.Header("X-Format-Warning", flag)
	}
	c.Data(http.StatusOK, "audio/wav", data)
}

func parseUploadedProgram(c *gin.Context) (*mpc.Program, bool) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return nil, false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return nil, false
	}

	prog, err := mpc.ParsePGM(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	return prog, true
}
