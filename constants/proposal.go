package constants

// ProposalStatus is the lifecycle status stored on proposals rows.
type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "draft"
	ProposalSent     ProposalStatus = "sent"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
	ProposalExpired  ProposalStatus = "expired"
)

// ProposalStatuses holds the allowed values for the proposal status field.
var ProposalStatuses = []string{
	string(ProposalDraft),
	string(ProposalSent),
	string(ProposalAccepted),
	string(ProposalRejected),
	string(ProposalExpired),
}

// ValidProposalStatus reports whether s is a known lifecycle status.
func ValidProposalStatus(s string) bool {
	for _, v := range ProposalStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// SentinelText is the placeholder the organizer uses when a textual field
// cannot be determined from the extracted text. It never reaches storage;
// the formatter maps it to the empty string.
const SentinelText = "N/A"

// ValidityDays is the default validity window applied when formatting a
// proposal (valid_until = formatted_at + ValidityDays).
const ValidityDays = 30
