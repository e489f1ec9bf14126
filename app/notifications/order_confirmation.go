// Package notifications delivers order confirmations. The OrderNotifier is
// constructed once at startup and handed to the checkout service; it owns
// no global state.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/pkg/logger"
	"github.com/shashiranjanraj/stylevault/pkg/mail"
	"github.com/shashiranjanraj/stylevault/pkg/ws"
)

// OrderNotifier sends the confirmation email and pushes the order onto the
// websocket feed. Either channel may be absent (nil mailer config, nil hub).
type OrderNotifier struct {
	mailer *mail.Mailer
	hub    *ws.Hub
	tmpl   *template.Template
}

func NewOrderNotifier(mailer *mail.Mailer, hub *ws.Hub) *OrderNotifier {
	return &OrderNotifier{
		mailer: mailer,
		hub:    hub,
		tmpl:   template.Must(template.New("order_confirmation").Funcs(tmplFuncs).Parse(orderConfirmationHTML)),
	}
}

// OrderCreated broadcasts the order to websocket subscribers and emails the
// confirmation. The websocket push never blocks; only the email can fail.
func (n *OrderNotifier) OrderCreated(ctx context.Context, order *models.Order, user *models.User) error {
	if n.hub != nil {
		if payload, err := json.Marshal(order); err == nil {
			n.hub.Publish(payload)
		}
	}

	if n.mailer == nil || !n.mailer.Configured() {
		logger.WithCtx(ctx).Warn("email not sent: mail credentials not configured",
			"order_id", order.ID.Hex())
		return nil
	}

	body, err := n.render(order, user)
	if err != nil {
		return fmt.Errorf("notifications: render confirmation: %w", err)
	}

	err = n.mailer.Compose().
		To(user.Email).
		Subject(fmt.Sprintf("Order Confirmation - Order #%s", order.ID.Hex())).
		Body(body).
		Send()
	if err != nil {
		return fmt.Errorf("notifications: send confirmation: %w", err)
	}

	logger.WithCtx(ctx).Info("order confirmation sent",
		"order_id", order.ID.Hex(), "to", user.Email)
	return nil
}

func (n *OrderNotifier) render(order *models.Order, user *models.User) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Order *models.Order
		User  *models.User
	}{Order: order, User: user}

	if err := n.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var tmplFuncs = template.FuncMap{
	"price": formatPrice,
	"lineTotal": func(item models.OrderItem) string {
		return formatPrice(item.Price * float64(item.Quantity))
	},
	"orderDate": func(order *models.Order) string {
		return order.CreatedAt.Format("1/2/2006")
	},
	"hexID": func(order *models.Order) string {
		return order.ID.Hex()
	},
}

// formatPrice renders a rupee amount with thousands separators and no
// decimals, e.g. 19999 → ₹19,999.
func formatPrice(amount float64) string {
	digits := fmt.Sprintf("%.0f", amount)

	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "₹" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

const orderConfirmationHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f5f5f5; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background-color: #ff9900; color: #0f1111; padding: 25px 20px; text-align: center; }
    .content { padding: 20px; background-color: #eaeded; }
    .order-details { background-color: white; padding: 15px; margin: 15px 0; border-radius: 4px; border: 1px solid #ddd; }
    table { width: 100%; border-collapse: collapse; margin: 15px 0; font-size: 13px; }
    table th { background-color: #f0f2f2; padding: 10px 8px; text-align: left; border-bottom: 2px solid #ddd; }
    table td { padding: 10px 8px; border-bottom: 1px solid #e7e7e7; }
    .total { font-size: 16px; font-weight: bold; text-align: right; margin-top: 15px; padding-top: 15px; border-top: 2px solid #ddd; }
    .footer { padding: 15px 20px; text-align: center; font-size: 12px; color: #666; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Order Confirmed!</h1></div>
    <div class="content">
      <p>Dear {{.User.Name}},</p>
      <p>Thank you for your order! We've received your order and it's being processed.</p>
      <div class="order-details">
        <h2>Order Details</h2>
        <p><strong>Order ID:</strong> {{hexID .Order}}</p>
        <p><strong>Order Date:</strong> {{orderDate .Order}}</p>
        <table>
          <thead>
            <tr><th>Product</th><th>Size</th><th>Qty</th><th>Price</th><th style="text-align: right;">Total</th></tr>
          </thead>
          <tbody>
            {{range .Order.Items}}
            <tr>
              <td>{{.Name}}</td>
              <td>{{.Size}}</td>
              <td>{{.Quantity}}</td>
              <td>{{price .Price}}</td>
              <td style="text-align: right;">{{lineTotal .}}</td>
            </tr>
            {{end}}
          </tbody>
        </table>
        <div class="total"><p>Total Amount: {{price .Order.TotalPrice}}</p></div>
      </div>
      <p>We'll send you another email when your order ships.</p>
      <p>Best regards,<br><strong>StyleVault Team</strong></p>
    </div>
    <div class="footer"><p>StyleVault E-Commerce</p></div>
  </div>
</body>
</html>`
