package model

// Party is a third party ("tercero") a transaction is attributed to:
// a customer or supplier identified by a document.
type Party struct {
	ID              int    `json:"id"`
	Nombre          string `json:"nombre"`
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
}

// PartyRef is the embedded party reference carried by a transaction.
// Only the ID is required; the backend may include the name.
type PartyRef struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre,omitempty"`
}
