package handlers

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"kakeibo/internal/config"
	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/logger"
)

// PairingHandler serves the QR pairing flow that lets a phone on the
// same network discover the server's base URL.
type PairingHandler struct {
	cfg *config.Config

	// lanIP resolves the server's outbound LAN address. Overridable in tests.
	lanIP func() (string, error)
}

// NewPairingHandler creates a new PairingHandler.
func NewPairingHandler(cfg *config.Config) *PairingHandler {
	return &PairingHandler{cfg: cfg, lanIP: outboundIP}
}

// outboundIP finds the local address the OS would use to reach the
// internet. No packets are sent; UDP "dialing" only selects a route.
func outboundIP() (string, error) {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil {
		return "", fmt.Errorf("unexpected local address %v", conn.LocalAddr())
	}
	return addr.IP.String(), nil
}

// baseURL builds the pairing URL handed to the phone.
func (h *PairingHandler) baseURL() (string, error) {
	ip, err := h.lanIP()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrNoLANAddress, err)
	}
	return fmt.Sprintf("http://%s:%s?from=qr", ip, h.cfg.Port), nil
}

// SyncURLResponse carries the pairing URL.
type SyncURLResponse struct {
	BaseURL string `json:"base_url"`
}

// SyncURL returns the server's pairing URL as JSON.
//
// @Summary     Pairing URL
// @Description Base URL a client on the same network should sync against
// @Tags        sync
// @Produce     json
// @Success     200 {object} SyncURLResponse "Pairing URL"
// @Failure     503 {object} ErrorResponse "No LAN address available"
// @Router      /sync/url [get]
func (h *PairingHandler) SyncURL(c *gin.Context) {
	url, err := h.baseURL()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SyncURLResponse{BaseURL: url})
}

// SyncQR renders the pairing URL as a QR code PNG.
//
// @Summary     Pairing QR code
// @Description PNG QR code encoding the pairing URL
// @Tags        sync
// @Produce     png
// @Success     200 {string} binary "QR code image"
// @Failure     503 {object} ErrorResponse "No LAN address available"
// @Router      /sync/qr.png [get]
func (h *PairingHandler) SyncQR(c *gin.Context) {
	url, err := h.baseURL()
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := qrcode.Encode(url, qrcode.Medium, 320)
	if err != nil {
		logger.Get().Errorw("failed to encode pairing QR code", "error", err.Error())
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// SyncPage serves a minimal HTML page embedding the QR code, for
// opening on the desktop next to the phone.
//
// @Summary     Pairing page
// @Description HTML page showing the pairing QR code and URL
// @Tags        sync
// @Produce     html
// @Success     200 {string} string "Pairing page"
// @Failure     503 {object} ErrorResponse "No LAN address available"
// @Router      /sync/page [get]
func (h *PairingHandler) SyncPage(c *gin.Context) {
	url, err := h.baseURL()
	if err != nil {
		respondWithError(c, err)
		return
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>かけいぼ ペアリング</title>
<style>
body { font-family: sans-serif; text-align: center; margin-top: 3rem; }
img  { width: 320px; height: 320px; }
code { background: #f0f0f0; padding: 0.2rem 0.4rem; border-radius: 4px; }
</style>
</head>
<body>
<h1>スマホで読み取ってください</h1>
<img src="/sync/qr.png" alt="pairing QR code">
<p><code>%s</code></p>
</body>
</html>`, url)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
