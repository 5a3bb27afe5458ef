package service

// QRCodeService defines the interface for request share code generation and parsing
type QRCodeService interface {
	// GenerateRequestQR renders a PNG QR code pointing at a blood request
	GenerateRequestQR(requestID string) ([]byte, error)

	// ParseRequestQR parses QR code data and returns the request id
	ParseRequestQR(qrData string) (string, error)
}
