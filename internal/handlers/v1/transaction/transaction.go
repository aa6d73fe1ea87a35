package transaction

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Date        string `json:"date" doc:"Calendar date (YYYY-MM-DD)"`
	Description string `json:"description" doc:"Statement description"`
	Amount      string `json:"amount" doc:"Signed decimal amount, positive is income"`
	Category    string `json:"category,omitempty" doc:"Category from the statement, if any"`
	SourceFile  string `json:"sourceFile" doc:"Statement file the row was imported from"`
	MatchedRule string `json:"matchedRule,omitempty" doc:"Name of the rule that claimed this transaction"`
}
