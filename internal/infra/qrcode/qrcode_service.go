package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"bloodlink/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// codeTypeRequest marks a QR payload pointing at a blood request.
const codeTypeRequest = "request"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	URL       string `json:"url,omitempty"`
}

//nolint:gochecknoglobals
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// NewQRCodeService creates a QR code service. Unknown correction levels fall back to M.
// When baseURL is set the payload also carries a link to the request.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(errorCorrectionLevel)]
	if !ok {
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRequestQR generates a PNG QR code for a blood request
func (s *qrcodeService) GenerateRequestQR(requestID string) ([]byte, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, errors.New("request id is required")
	}

	data := QRCodeData{
		Type:      codeTypeRequest,
		RequestID: requestID,
		URL:       s.requestURL(requestID),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseRequestQR parses QR code data and returns the request id
func (s *qrcodeService) ParseRequestQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != codeTypeRequest {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if strings.TrimSpace(data.RequestID) == "" {
		return "", errors.New("QR code carries no request id")
	}

	return data.RequestID, nil
}

func (s *qrcodeService) requestURL(requestID string) string {
	if s.baseURL == "" {
		return ""
	}

	return s.baseURL + "/requests/" + url.PathEscape(requestID)
}
