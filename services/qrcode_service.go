// services/qrcode_service.go
package services

import (
	"fmt"
	"net/url"
	"os"

	"github.com/skip2/go-qrcode"
)

// GenerateJoinQRCode creates a QR code PNG for joining a meeting. The code
// encodes the join page URL with the meeting's join code prefilled.
func GenerateJoinQRCode(joinCode string, size int) ([]byte, error) {
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080" // Default for local testing
	}

	joinURL := fmt.Sprintf("%s/join-meeting?code=%s", applicationURL, url.QueryEscape(joinCode))

	png, err := qrcode.Encode(joinURL, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
