package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
	Link(orderID int) string
}

// DefaultQRGenerator encodes a link to the order's public status page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/orders/%d/status", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

func (g DefaultQRGenerator) Link(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}
