package exmini

// Finding points at a conversion with missing data.
type Finding struct {
	Index   int      // Index is the position of the transaction in the evaluated slice.
	ID      int      // ID is the transaction id.
	DealID  string   // DealID is the deal id of the transaction, possibly empty.
	Missing []string // Missing lists the canonical names of the missing fields.
}

// Alerts classifies conversions missing their payable or trader rate.
type Alerts struct {
	Errors   []Finding // Errors are conversions missing both payable and trader rate.
	Warnings []Finding // Warnings are conversions missing one of them.
}

// Len returns the total number of findings.
func (a Alerts) Len() int { return len(a.Errors) + len(a.Warnings) }

// EvaluateAlerts scans conversions for a missing (null or zero) payable or
// trader rate. Other transaction types never raise a finding.
func EvaluateAlerts(txs []Transaction) Alerts {
	var alerts Alerts
	for i, tx := range txs {
		if !tx.IsConversion() {
			continue
		}
		var missing []string
		if IsMissing(tx.Payable) {
			missing = append(missing, keyPayable)
		}
		if IsMissing(tx.TraderRate) {
			missing = append(missing, keyTraderRate)
		}
		f := Finding{Index: i, ID: tx.ID, DealID: tx.DealID, Missing: missing}
		switch len(missing) {
		case 2:
			alerts.Errors = append(alerts.Errors, f)
		case 1:
			alerts.Warnings = append(alerts.Warnings, f)
		}
	}
	return alerts
}
