package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"legrazie-orders/models"
)

// FormatOrderMessage renders the finalized order as the WhatsApp order card.
// Pure function: same order and timestamp, same text.
func FormatOrderMessage(orderID int64, in models.CreateOrderInput, at time.Time) string {
	var b strings.Builder

	b.WriteString("🍽️ *NUOVO ORDINE - RISTORANTE LE GRAZIE*\n\n")
	fmt.Fprintf(&b, "📋 *Ordine #%d*\n\n", orderID)

	if in.OrderType == models.OrderTypeTable && in.TableNumber != nil {
		b.WriteString("📍 *Tipo:* Al tavolo\n")
		fmt.Fprintf(&b, "🪑 *Tavolo:* %d\n\n", *in.TableNumber)
	} else if in.OrderType == models.OrderTypeDelivery {
		b.WriteString("📍 *Tipo:* Da asporto\n")
		if !strEmpty(in.DeliveryAddress) && !strEmpty(in.DeliveryNumber) {
			fmt.Fprintf(&b, "🏠 *Indirizzo:* %s, %s\n", *in.DeliveryAddress, *in.DeliveryNumber)
		}
		if !strEmpty(in.DeliveryPhone) {
			fmt.Fprintf(&b, "📱 *Telefono:* %s\n", *in.DeliveryPhone)
		}
		if in.DeliveryTime != nil {
			fmt.Fprintf(&b, "⏰ *Consegna prevista:* %d minuti\n", *in.DeliveryTime)
		}
		b.WriteString("\n")
	}

	b.WriteString("📦 *Dettagli ordine:*\n")
	for _, item := range in.Items {
		fmt.Fprintf(&b, "\n• %s - €%.2f", item.Name, item.Price)
		if len(item.Customizations.Removed) > 0 {
			fmt.Fprintf(&b, "\n  ❌ Senza: %s", strings.Join(item.Customizations.Removed, ", "))
		}
		if len(item.Customizations.Added) > 0 {
			fmt.Fprintf(&b, "\n  ➕ Aggiunte: %s", strings.Join(item.Customizations.Added, ", "))
		}
	}

	fmt.Fprintf(&b, "\n\n💰 *Totale: €%.2f*\n", in.TotalPrice)
	fmt.Fprintf(&b, "\n⏱️ *Orario ordine:* %s", at.Format("02/01/2006, 15:04:05"))

	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens the chat with the
// message body pre-filled. Dispatch stays a manual user action.
func WhatsAppLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + encodeURIComponent(message)
}

// encodeURIComponent escapes like the JS function of the same name: spaces
// become %20, never +.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
