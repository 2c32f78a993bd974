package render_invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`#`, `\#`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `&lt;`,
	`>`, `&gt;`,
)

// buildMarkdown собирает счет по данным бронирования
// Суммы берутся из бронирования как есть: их считает backend
func buildMarkdown(r *domain.Reservation, issuedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Facture réservation n° %s\n\n", escapeMarkdown(r.ID.String()))
	fmt.Fprintf(&b, "Émise le %s\n\n", issuedAt.Format(domain.DateFormat))

	b.WriteString("## Client\n\n")
	switch {
	case r.User != nil:
		fmt.Fprintf(&b, "- Nom: %s\n", escapeMarkdown(r.User.Name))
		fmt.Fprintf(&b, "- Email: %s\n", escapeMarkdown(r.User.Email))
	default:
		fmt.Fprintf(&b, "- Nom: %s\n", escapeMarkdown(r.GuestName))
		fmt.Fprintf(&b, "- Email: %s\n", escapeMarkdown(r.GuestEmail))
		if r.GuestPhone != "" {
			fmt.Fprintf(&b, "- Téléphone: %s\n", escapeMarkdown(r.GuestPhone))
		}
	}
	b.WriteString("\n")

	title := "Service " + r.ServiceID.String()
	var agency string
	if r.Service != nil {
		title = r.Service.Title
		if r.Service.Agency != nil {
			agency = r.Service.Agency.Name
		}
	}
	if agency != "" {
		fmt.Fprintf(&b, "Agence: %s\n\n", escapeMarkdown(agency))
	}

	b.WriteString("## Détail\n\n")
	b.WriteString("| Service | Date | Heure | Personnes | Total |\n")
	b.WriteString("|---|---|---|---:|---:|\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n\n",
		escapeMarkdown(title),
		escapeMarkdown(r.ReservationDate),
		escapeMarkdown(orDash(r.StartTime)),
		r.NumberOfPeople,
		formatAmount(r.TotalPrice),
	)

	fmt.Fprintf(&b, "**Total: %s**\n\n", formatAmount(r.TotalPrice))
	fmt.Fprintf(&b, "Statut: %s\n", escapeMarkdown(string(r.Status)))

	if r.SpecialRequests != "" {
		fmt.Fprintf(&b, "\n> %s\n", escapeMarkdown(strings.ReplaceAll(r.SpecialRequests, "\n", " ")))
	}
	return b.String()
}

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f €", v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
