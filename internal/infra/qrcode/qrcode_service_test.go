package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_RecoveryLevel(t *testing.T) {
	tests := map[string]qrcode.RecoveryLevel{
		"L":       qrcode.Low,
		"m":       qrcode.Medium,
		"Q":       qrcode.High,
		"H":       qrcode.Highest,
		"":        qrcode.Medium,
		"invalid": qrcode.Medium,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			svc := NewQRCodeService(256, in, "").(*qrcodeService)
			assert.Equal(t, want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateRequestQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://bloodlink.example")

	qrBytes, err := service.GenerateRequestQR("r1")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateRequestQR_EmptyID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateRequestQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_RequestURL(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://bloodlink.example/").(*qrcodeService)
	assert.Equal(t, "https://bloodlink.example/requests/r%201", svc.requestURL("r 1"))

	svc = NewQRCodeService(256, "M", "").(*qrcodeService)
	assert.Empty(t, svc.requestURL("r1"))
}

func TestQRCodeService_ParseRequestQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		data    QRCodeData
		want    string
		wantErr bool
	}{
		{
			name: "valid request code",
			data: QRCodeData{Type: "request", RequestID: "r1", URL: "https://bloodlink.example/requests/r1"},
			want: "r1",
		},
		{
			name:    "wrong type",
			data:    QRCodeData{Type: "subscription", RequestID: "r1"},
			wantErr: true,
		},
		{
			name:    "missing request id",
			data:    QRCodeData{Type: "request"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.data)
			require.NoError(t, err)

			got, err := service.ParseRequestQR(string(raw))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCodeService_ParseRequestQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.ParseRequestQR("not json")
	assert.Error(t, err)
}
