package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/marketing-crm-api/internal/infrastructure/pdf"
)

// El generador produce un PDF válido en memoria con los datos del pedido.
func TestGenerateOrderPDF(t *testing.T) {
	gen := infrapdf.NewMarotoOrderPDFGenerator()

	order := &entity.Order{
		OrderID:     "1234",
		UserID:      "user-1",
		ClientName:  "Ana Pérez",
		ServiceType: "Campaña Digital",
		Amount:      decimal.NewFromFloat(150.50),
		TransferID:  "TRX-001",
		Status:      entity.StatusProcessing,
		CreatedAt:   time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	client := &entity.User{
		ID:       "user-1",
		Email:    "ana@example.com",
		Name:     "Ana Pérez",
		IDType:   "CC",
		IDNumber: "123",
		Phone:    "3001234567",
		Address:  "Calle 1 # 2-3",
	}

	pdfBytes, err := gen.GenerateOrderPDF(context.Background(), order, client)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")), "debe empezar con la firma PDF")
}

// Los campos vacíos del cliente se rellenan con marcadores, no rompen el render.
func TestGenerateOrderPDF_ClienteSinPerfil(t *testing.T) {
	gen := infrapdf.NewMarotoOrderPDFGenerator()

	order := &entity.Order{
		OrderID:     "5678",
		ServiceType: "A",
		Amount:      decimal.NewFromFloat(10),
		TransferID:  "T1",
		CreatedAt:   time.Now(),
	}
	client := &entity.User{ID: "user-2", Email: "nuevo@example.com"}

	pdfBytes, err := gen.GenerateOrderPDF(context.Background(), order, client)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
