package insight

import (
	"strconv"
	"strings"
	"time"

	"github.com/NextMind-AI/crm-admin-go/hubspot"
)

// StageCounts holds the trial-deal stage classification. The buckets are
// matched independently by substring, so a pathological stage label could
// count in more than one; that mirrors how the labels are actually
// configured rather than imposing an ordering the CRM doesn't have.
type StageCounts struct {
	Converted int
	Ended     int
	Cancelled int
	Active    int
}

// HealthSnapshot aggregates everything the insight prompt is built from.
// DegradedSources names each sub-fetch that failed and was replaced with
// an empty or placeholder value.
type HealthSnapshot struct {
	FirstName     string
	LastName      string
	Email         string
	CustomerSince string

	HardwareDealCount int
	TrialDealCount    int
	HardwareUnits     int
	HardwareTotal     float64
	TrialTotal        float64

	Stages StageCounts

	LastPurchase time.Time
	LastTrial    time.Time

	GeneratedAt     time.Time
	DegradedSources []string
}

func (s *HealthSnapshot) HasActiveSubscription() bool {
	return s.Stages.Converted >= 1 && s.Stages.Cancelled == 0
}

func (s *HealthSnapshot) HasCancelledSubscription() bool {
	return s.Stages.Cancelled >= 1
}

func (s *HealthSnapshot) HasUnconvertedTrial() bool {
	return s.Stages.Ended >= 1
}

// PartitionDeals splits deals into hardware orders and subscription trials
// by pipeline id. Every deal lands in exactly one partition.
func PartitionDeals(deals []hubspot.Object, hardwarePipelineID string) (hardware, trial []hubspot.Object) {
	for _, deal := range deals {
		if deal.Properties["pipeline"] == hardwarePipelineID {
			hardware = append(hardware, deal)
		} else {
			trial = append(trial, deal)
		}
	}
	return hardware, trial
}

// ClassifyTrialStages buckets trial deals by case-insensitive substring
// match on the current stage label. Active additionally requires that none
// of the terminal substrings match, so "Active Trial" is active but
// "Converted (Active Subscription)" is not. An unknown stage id matches
// nothing.
func ClassifyTrialStages(trials []hubspot.Object, stageLabels map[string]string) StageCounts {
	var counts StageCounts

	for _, deal := range trials {
		label := strings.ToLower(stageLabels[deal.Properties["dealstage"]])

		converted := strings.Contains(label, "converted")
		ended := strings.Contains(label, "ended")
		cancelled := strings.Contains(label, "cancelled")

		if converted {
			counts.Converted++
		}
		if ended {
			counts.Ended++
		}
		if cancelled {
			counts.Cancelled++
		}
		if strings.Contains(label, "active") && !converted && !ended && !cancelled {
			counts.Active++
		}
	}

	return counts
}

// BuildSnapshot assembles the health snapshot from already-fetched inputs.
// It is pure so the classification and aggregation logic stays testable
// without any network calls; the aggregator does the fetching.
func BuildSnapshot(contact *hubspot.Object, hardware, trial []hubspot.Object, stageLabels map[string]string, hardwareUnits int, now time.Time) HealthSnapshot {
	snapshot := HealthSnapshot{
		HardwareDealCount: len(hardware),
		TrialDealCount:    len(trial),
		HardwareUnits:     hardwareUnits,
		HardwareTotal:     sumAmounts(hardware),
		TrialTotal:        sumAmounts(trial),
		Stages:            ClassifyTrialStages(trial, stageLabels),
		LastPurchase:      latestCreateDate(hardware),
		LastTrial:         latestCreateDate(trial),
		GeneratedAt:       now,
	}

	if contact != nil {
		snapshot.FirstName = contact.Properties["firstname"]
		snapshot.LastName = contact.Properties["lastname"]
		snapshot.Email = contact.Properties["email"]
		snapshot.CustomerSince = contact.Properties["createdate"]
	}

	return snapshot
}

func sumAmounts(deals []hubspot.Object) float64 {
	var total float64
	for _, deal := range deals {
		if amount, err := strconv.ParseFloat(deal.Properties["amount"], 64); err == nil {
			total += amount
		}
	}
	return total
}

// latestCreateDate returns the most recent createdate, or the zero time
// when the list is empty or no date parses.
func latestCreateDate(deals []hubspot.Object) time.Time {
	var latest time.Time
	for _, deal := range deals {
		created, err := time.Parse(time.RFC3339, deal.Properties["createdate"])
		if err != nil {
			continue
		}
		if created.After(latest) {
			latest = created
		}
	}
	return latest
}
