// Package pix implements the payment reference collaborator over the pix
// instant payment rail. The generated code follows the BR Code (EMV) layout
// accepted by Brazilian banking apps; a production deployment would delegate
// to a payment gateway instead.
package pix

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"instagrow/internal/core/ports"
	"instagrow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

// Generator produces pix payment references. It is stateless and safe for
// concurrent use.
type Generator struct {
	merchantCity string
}

// NewGenerator creates a pix payment reference generator. The merchant city
// is embedded in every generated code.
func NewGenerator(merchantCity string) (*Generator, error) {
	merchantCity = strings.TrimSpace(merchantCity)
	if merchantCity == "" {
		return nil, errs.NewValueIsRequiredError("merchantCity")
	}

	return &Generator{merchantCity: merchantCity}, nil
}

// Generate builds a payment reference for the draft: a BR Code payload, its
// QR rendering as a base64 PNG data URL, and a short payment identifier.
// Every call yields a fresh payment identifier.
func (g *Generator) Generate(
	ctx context.Context,
	draft ports.PaymentDraft,
) (ports.PaymentReference, error) {
	if err := ctx.Err(); err != nil {
		return ports.PaymentReference{}, err
	}

	paymentID := uuid.NewString()[:8]
	pixCode := g.buildPayload(paymentID, draft)

	png, err := qrcode.Encode(pixCode, qrcode.Medium, qrCodeSize)
	if err != nil {
		return ports.PaymentReference{}, fmt.Errorf("encode qr code: %w", err)
	}

	return ports.PaymentReference{
		PixCode:   pixCode,
		QRCode:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		PaymentID: paymentID,
	}, nil
}

// buildPayload assembles the BR Code payload. Receiver name and city are
// truncated to the EMV field limits of 25 and 15 characters.
func (g *Generator) buildPayload(paymentID string, draft ports.PaymentDraft) string {
	amount := draft.Amount.String()
	return fmt.Sprintf(
		"00020126580014BR.GOV.BCB.PIX013636%s52040000530398654%02d%s5802BR5925%s6009%s62070503***6304",
		paymentID,
		len(amount), amount,
		truncate(draft.CustomerName, 25),
		truncate(g.merchantCity, 15),
	)
}

// truncate cuts s to at most limit characters. The EMV field limits count
// characters, and cutting on bytes could split a multibyte rune in an
// accented name, corrupting the payload.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
