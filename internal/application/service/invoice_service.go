package service

import (
	"fmt"

	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/pkg/apperror"
	"github.com/mithuncards/cardpos/pkg/invoice"
)

// InvoiceService renders printable invoices for saved orders.
type InvoiceService struct {
	store    *session.Store
	settings *SettingsService
}

func NewInvoiceService(store *session.Store, settings *SettingsService) *InvoiceService {
	return &InvoiceService{store: store, settings: settings}
}

// RenderInvoice builds the PDF invoice for one cached order.
func (s *InvoiceService) RenderInvoice(orderID int64) ([]byte, error) {
	order, ok := s.store.OrderByID(orderID)
	if !ok {
		return nil, apperror.NewNotFoundError("Order")
	}
	shop := s.settings.Get()

	doc := invoice.Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%06d", order.ID),
		CompanyName:   shop.CompanyName,
		BillTo:        order.CustomerName,
		Currency:      shop.CurrencySymbol(),
		InvoiceDate:   order.OrderDate,
		SubTotal:      float64(order.SubTotal) / 100,
		Tax:           float64(order.Tax) / 100,
		Discount:      float64(order.Discount) / 100,
		Total:         float64(order.Total) / 100,
		AmountPaid:    float64(order.AdvancePaid) / 100,
		BalanceDue:    float64(order.BalanceDue) / 100,
		Status:        order.Status.String(),
		PaymentMethod: order.PaymentMethod,
	}
	for _, item := range order.Items {
		doc.Items = append(doc.Items, invoice.Item{
			Description: item.ProductName,
			UnitCost:    float64(item.UnitPrice) / 100,
			Quantity:    item.Quantity,
			Amount:      float64(item.Total) / 100,
		})
	}
	return doc.Render()
}
