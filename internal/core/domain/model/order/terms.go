package order

import (
	"fmt"
	"strconv"
	"strings"

	"escrow/internal/core/domain/model/kernel"
)

// fallbackVendorName is used when no vendor name is available at creation.
const fallbackVendorName = "Vendor"

type termsInput struct {
	VendorDisplayName      string
	ServiceType            string
	ClientName             string
	TotalAmount            kernel.Money
	AdvancePercentage      float64
	AdvanceAmount          kernel.Money
	RemainingAmount        kernel.Money
	ProductionDeadlineDays int
}

// generateTerms renders the service agreement text stored on the order.
// The template is deterministic: the same inputs always produce the same
// text. It combines the vendor display name, service and client details,
// the computed payment split, the production timeline, and a fixed
// boilerplate of payment terms, cancellation policy, and liability
// disclaimer. Generated once at creation and never regenerated.
func generateTerms(in termsInput) string {
	vendorDisplayName := strings.TrimSpace(in.VendorDisplayName)
	if vendorDisplayName == "" {
		vendorDisplayName = fallbackVendorName
	}

	pct := strconv.FormatFloat(in.AdvancePercentage, 'f', -1, 64)

	return fmt.Sprintf(`SERVICE AGREEMENT

Service Provider: %s
Service Type: %s
Client: %s

PAYMENT STRUCTURE:
• Total Project Cost: %s
• Advance Payment (%s%%): %s
• Remaining Balance: %s

TIMELINE:
• Production will be completed within %d days from the start date
• Client will be notified upon completion with proof of work

PAYMENT TERMS:
1. The advance payment of %s will be held in escrow by the platform
2. Funds will be released to the service provider once production officially begins
3. The remaining payment of %s is due upon completion and delivery
4. Client will receive photographic or documentary proof before final payment is required

CANCELLATION & REFUNDS:
• If the service provider cancels before starting production, the full advance payment will be refunded
• If the client cancels after production has started, refund terms will be negotiated between parties
• The platform facilitates payment holding but does not mediate disputes beyond the escrow service

PLATFORM LIABILITY DISCLAIMER:
The 3ARBOON platform provides payment holding services only. By using this service, both parties acknowledge and agree that:

1. The platform is not responsible for the quality, completion, or delivery of services
2. The platform is not liable for any disputes, damages, or losses arising from the service agreement
3. Users are responsible for verifying the legitimacy and capabilities of their transaction partners
4. The platform does not guarantee outcomes and serves solely as a payment intermediary
5. Any misuse of this platform, including fraud or misrepresentation, is the sole responsibility of the offending party
6. The platform reserves the right to hold funds in case of reported disputes until resolution

By proceeding, both parties agree to these terms and acknowledge their understanding of the platform's limited role as a payment escrow service.`,
		vendorDisplayName,
		in.ServiceType,
		in.ClientName,
		in.TotalAmount.Dollar(),
		pct,
		in.AdvanceAmount.Dollar(),
		in.RemainingAmount.Dollar(),
		in.ProductionDeadlineDays,
		in.AdvanceAmount.Dollar(),
		in.RemainingAmount.Dollar(),
	)
}
