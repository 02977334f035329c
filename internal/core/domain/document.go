package domain

// ContractDocument is the legal document attached to a deal. Only ClauseBody
// and Observations are persisted user edits; RenderedBody is recomputed from
// the current Deal snapshot on every render, so edits to the computed
// sections do not survive a reopen.
type ContractDocument struct {
	DocumentID   string `json:"documentID"`
	DealID       string `json:"dealID"`
	ClauseBody   string `json:"clauseBody"`   // boilerplate legal clauses, user-editable
	Observations string `json:"observations"` // optional free-text observations
	RenderedBody string `json:"renderedBody"` // derived, never persisted
	AuditFields
}

// ClauseTemplate is a named boilerplate clause in the library the operator
// can swap into a contract's ClauseBody.
type ClauseTemplate struct {
	TemplateID string `json:"templateID"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	AuditFields
}
