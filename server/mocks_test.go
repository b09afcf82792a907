package server

import (
	"context"

	"github.com/NextMind-AI/crm-admin-go/hubspot"
)

// mockCRMClient satisfies both the handler-facing CRMClient and the
// aggregator's narrower interface so one fake backs a whole test server.
type mockCRMClient struct {
	contacts            *hubspot.ObjectList
	contactsErr         error
	createdContact      *hubspot.Object
	createErr           error
	deals               *hubspot.ObjectList
	dealsErr            error
	createdDeal         *hubspot.Object
	createDealContactID string
	pipelines           []hubspot.Pipeline
	pipelinesErr        error

	contact          *hubspot.Object
	contactErr       error
	contactDeals     []hubspot.Object
	contactDealsErr  error
	stageLabels      map[string]string
	stageLabelsErr   error
	quantities       map[string]int
	quantityErrs     map[string]error
	subscriptions    []hubspot.Object
	subscriptionsErr error

	createContactProps map[string]string
	createDealProps    map[string]string
	quantityCalls      []string
}

func (m *mockCRMClient) ListContacts(ctx context.Context) (*hubspot.ObjectList, error) {
	return m.contacts, m.contactsErr
}

func (m *mockCRMClient) CreateContact(ctx context.Context, properties map[string]string) (*hubspot.Object, error) {
	m.createContactProps = properties
	return m.createdContact, m.createErr
}

func (m *mockCRMClient) ListDeals(ctx context.Context) (*hubspot.ObjectList, error) {
	return m.deals, m.dealsErr
}

func (m *mockCRMClient) CreateDeal(ctx context.Context, properties map[string]string, contactID string) (*hubspot.Object, error) {
	m.createDealProps = properties
	m.createDealContactID = contactID
	return m.createdDeal, nil
}

func (m *mockCRMClient) ListDealPipelines(ctx context.Context) ([]hubspot.Pipeline, error) {
	return m.pipelines, m.pipelinesErr
}

func (m *mockCRMClient) DealsForContact(ctx context.Context, contactID string) ([]hubspot.Object, error) {
	return m.contactDeals, m.contactDealsErr
}

func (m *mockCRMClient) SubscriptionsForContact(ctx context.Context, objectType, contactID string) ([]hubspot.Object, error) {
	return m.subscriptions, m.subscriptionsErr
}

func (m *mockCRMClient) GetContact(ctx context.Context, contactID string) (*hubspot.Object, error) {
	return m.contact, m.contactErr
}

func (m *mockCRMClient) StageLabels(ctx context.Context) (map[string]string, error) {
	return m.stageLabels, m.stageLabelsErr
}

func (m *mockCRMClient) DealLineItemQuantity(ctx context.Context, dealID string) (int, error) {
	m.quantityCalls = append(m.quantityCalls, dealID)
	if err, ok := m.quantityErrs[dealID]; ok {
		return 0, err
	}
	return m.quantities[dealID], nil
}

type mockAIClient struct {
	response string
	err      error
	prompts  []string
}

func (m *mockAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}
