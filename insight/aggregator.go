package insight

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NextMind-AI/crm-admin-go/gemini"
	"github.com/NextMind-AI/crm-admin-go/hubspot"
)

// Aggregator assembles a contact's health snapshot from the CRM and asks
// the AI endpoint for a structured insight over it. Sub-fetches degrade to
// empty or placeholder values rather than failing the whole request; only
// the final AI call itself is fatal.
type Aggregator struct {
	crm                CRMClient
	ai                 AIClient
	hardwarePipelineID string
}

func NewAggregator(crm CRMClient, ai AIClient, hardwarePipelineID string) *Aggregator {
	return &Aggregator{
		crm:                crm,
		ai:                 ai,
		hardwarePipelineID: hardwarePipelineID,
	}
}

// Result pairs the parsed (or placeholder) insight with the unmodified
// model text so the dashboard can always render something.
type Result struct {
	Insight         gemini.Insight `json:"insight"`
	Parsed          bool           `json:"parsed"`
	RawResponse     string         `json:"rawResponse"`
	DegradedSources []string       `json:"degradedSources,omitempty"`
}

// GenerateInsight runs the full aggregation pipeline for one contact.
func (a *Aggregator) GenerateInsight(ctx context.Context, contactID string) (*Result, error) {
	var degraded []string

	contact, err := a.crm.GetContact(ctx, contactID)
	if err != nil {
		log.Warn().Err(err).Str("contact_id", contactID).Msg("Contact lookup failed, proceeding with placeholders")
		contact = nil
		degraded = append(degraded, "contact")
	}

	deals, err := a.crm.DealsForContact(ctx, contactID)
	if err != nil {
		log.Warn().Err(err).Str("contact_id", contactID).Msg("Deal lookup failed, proceeding with no deals")
		deals = nil
		degraded = append(degraded, "deals")
	}

	hardware, trial := PartitionDeals(deals, a.hardwarePipelineID)

	stageLabels, err := a.crm.StageLabels(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Pipeline lookup failed, stage classification will match nothing")
		stageLabels = map[string]string{}
		degraded = append(degraded, "pipelines")
	}

	quantities := a.HardwareQuantities(ctx, hardware)
	hardwareUnits := 0
	for _, quantity := range quantities {
		hardwareUnits += quantity
	}

	snapshot := BuildSnapshot(contact, hardware, trial, stageLabels, hardwareUnits, time.Now())
	snapshot.DegradedSources = degraded

	prompt := BuildPrompt(RenderSummary(snapshot))

	raw, err := a.ai.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed := gemini.ParseInsight(raw)
	if !parsed.Parsed {
		log.Warn().Str("contact_id", contactID).Msg("AI response was not parseable JSON, returning placeholder insight")
	}

	return &Result{
		Insight:         parsed.Insight,
		Parsed:          parsed.Parsed,
		RawResponse:     raw,
		DegradedSources: degraded,
	}, nil
}

// HardwareQuantities fetches per-deal line-item quantity sums as sibling
// calls and waits for all of them. A failed lookup counts the deal as zero
// units; the failure is logged, not surfaced.
func (a *Aggregator) HardwareQuantities(ctx context.Context, deals []hubspot.Object) map[string]int {
	quantities := make([]int, len(deals))

	var wg sync.WaitGroup
	for i, deal := range deals {
		wg.Add(1)
		go func(i int, dealID string) {
			defer wg.Done()

			quantity, err := a.crm.DealLineItemQuantity(ctx, dealID)
			if err != nil {
				log.Warn().Err(err).Str("deal_id", dealID).Msg("Line item lookup failed, counting deal as zero units")
				return
			}
			quantities[i] = quantity
		}(i, deal.ID)
	}
	wg.Wait()

	result := make(map[string]int, len(deals))
	for i, deal := range deals {
		result[deal.ID] = quantities[i]
	}

	return result
}
