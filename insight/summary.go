package insight

import (
	"fmt"
	"strings"
	"time"
)

// RenderSummary formats the snapshot into the fixed-structure text block
// that gets embedded in the AI prompt. The health-signal markers at the
// bottom are what the model keys on, so their wording is load-bearing.
func RenderSummary(s HealthSnapshot) string {
	var b strings.Builder

	firstName := s.FirstName
	if firstName == "" {
		firstName = "Unknown"
	}
	lastName := s.LastName
	email := s.Email
	if email == "" {
		email = "unknown"
	}
	since := s.CustomerSince
	if since == "" {
		since = "unknown"
	}

	b.WriteString("CUSTOMER HEALTH SUMMARY\n")
	b.WriteString("=======================\n")
	fmt.Fprintf(&b, "Customer: %s %s (%s)\n", firstName, lastName, email)
	fmt.Fprintf(&b, "Customer since: %s\n\n", since)

	b.WriteString("THERMOSTAT HARDWARE\n")
	fmt.Fprintf(&b, "- Hardware orders: %d\n", s.HardwareDealCount)
	fmt.Fprintf(&b, "- Thermostat units owned: %d\n", s.HardwareUnits)
	fmt.Fprintf(&b, "- Total hardware spend: $%.2f\n", s.HardwareTotal)
	fmt.Fprintf(&b, "- Most recent purchase: %s\n\n", recencyLine(s.LastPurchase, s.GeneratedAt, "no purchase"))

	b.WriteString("SUBSCRIPTION TRIALS\n")
	fmt.Fprintf(&b, "- Trials started: %d\n", s.TrialDealCount)
	fmt.Fprintf(&b, "- Converted to paid subscription: %d\n", s.Stages.Converted)
	fmt.Fprintf(&b, "- Trial ended without converting: %d\n", s.Stages.Ended)
	fmt.Fprintf(&b, "- Cancelled: %d\n", s.Stages.Cancelled)
	fmt.Fprintf(&b, "- Currently in active trial: %d\n", s.Stages.Active)
	fmt.Fprintf(&b, "- Total trial value: $%.2f\n", s.TrialTotal)
	fmt.Fprintf(&b, "- Most recent trial: %s\n\n", recencyLine(s.LastTrial, s.GeneratedAt, "no trial"))

	b.WriteString("HEALTH SIGNALS\n")
	signals := 0
	if s.HasActiveSubscription() {
		b.WriteString("- ACTIVE SUBSCRIBER: paying subscription in good standing\n")
		signals++
	}
	if s.HasCancelledSubscription() {
		b.WriteString("- SUBSCRIPTION CANCELLED\n")
		b.WriteString("- CHURN RISK: HIGH - customer has cancelled a subscription\n")
		signals++
	}
	if s.HasUnconvertedTrial() {
		b.WriteString("- TRIAL ENDED WITHOUT CONVERSION: customer tried the product but did not subscribe\n")
		signals++
	}
	if signals == 0 {
		b.WriteString("- NO SUBSCRIPTION HISTORY\n")
	}

	return b.String()
}

func recencyLine(when, now time.Time, placeholder string) string {
	if when.IsZero() {
		return placeholder
	}
	days := int(now.Sub(when).Hours() / 24)
	return fmt.Sprintf("%s (%d days ago)", when.Format("2006-01-02"), days)
}
