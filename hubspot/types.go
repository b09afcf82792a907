package hubspot

import "encoding/json"

// Object is a generic HubSpot CRM record. Property values always arrive as
// strings, whatever their configured type in HubSpot.
type Object struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	CreatedAt  string            `json:"createdAt,omitempty"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
}

type ObjectList struct {
	Results []Object `json:"results"`
	Total   int      `json:"total,omitempty"`
}

type Pipeline struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Stages []Stage `json:"stages"`
}

type Stage struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	DisplayOrder int    `json:"displayOrder"`
}

type PipelineList struct {
	Results []Pipeline `json:"results"`
}

// associationList is the v4 associations response shape. toObjectId is
// numeric on the wire.
type associationList struct {
	Results []struct {
		ToObjectID json.Number `json:"toObjectId"`
	} `json:"results"`
}

type batchReadRequest struct {
	Inputs     []batchReadInput `json:"inputs"`
	Properties []string         `json:"properties"`
}

type batchReadInput struct {
	ID string `json:"id"`
}

type createObjectRequest struct {
	Properties   map[string]string   `json:"properties"`
	Associations []objectAssociation `json:"associations,omitempty"`
}

type objectAssociation struct {
	To    associationTarget `json:"to"`
	Types []associationType `json:"types"`
}

type associationTarget struct {
	ID string `json:"id"`
}

type associationType struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int    `json:"associationTypeId"`
}
