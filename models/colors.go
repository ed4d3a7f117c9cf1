// ABOUTME: Status-to-color mappings shared by the web and terminal views
// ABOUTME: Returns tailwind badge classes and terminal color codes per enum value
package models

const defaultBadge = "bg-gray-100 text-gray-800"

func (s LeadStatus) Badge() string {
	switch s {
	case LeadNew:
		return "bg-blue-100 text-blue-800"
	case LeadContacted:
		return "bg-yellow-100 text-yellow-800"
	case LeadQualified:
		return "bg-purple-100 text-purple-800"
	case LeadProposal:
		return "bg-orange-100 text-orange-800"
	case LeadWon:
		return "bg-green-100 text-green-800"
	case LeadLost:
		return "bg-red-100 text-red-800"
	}
	return defaultBadge
}

func (s CustomerStatus) Badge() string {
	switch s {
	case CustomerActive:
		return "bg-green-100 text-green-800"
	case CustomerPending:
		return "bg-yellow-100 text-yellow-800"
	}
	return defaultBadge
}

func (s CampaignStatus) Badge() string {
	switch s {
	case CampaignActive:
		return "bg-green-100 text-green-800"
	case CampaignPlanned:
		return "bg-blue-100 text-blue-800"
	case CampaignPaused:
		return "bg-yellow-100 text-yellow-800"
	}
	return defaultBadge
}

func (s AdStatus) Badge() string {
	switch s {
	case AdInReview:
		return "bg-yellow-100 text-yellow-800"
	case AdApproved:
		return "bg-blue-100 text-blue-800"
	case AdRunning:
		return "bg-green-100 text-green-800"
	case AdPaused:
		return "bg-orange-100 text-orange-800"
	case AdCompleted:
		return "bg-purple-100 text-purple-800"
	}
	return defaultBadge
}

func (t FollowUpType) Badge() string {
	switch t {
	case FollowUpCall:
		return "bg-blue-100 text-blue-800"
	case FollowUpEmail:
		return "bg-purple-100 text-purple-800"
	case FollowUpMeeting:
		return "bg-green-100 text-green-800"
	}
	return defaultBadge
}

func (t FollowUpType) Icon() string {
	switch t {
	case FollowUpCall:
		return "📞"
	case FollowUpEmail:
		return "✉️"
	case FollowUpMeeting:
		return "🤝"
	case FollowUpNote:
		return "📝"
	}
	return "📄"
}

// TermColor maps a badge class to an ANSI 256 color for lipgloss.
func TermColor(badge string) string {
	switch badge {
	case "bg-blue-100 text-blue-800":
		return "33"
	case "bg-yellow-100 text-yellow-800":
		return "220"
	case "bg-purple-100 text-purple-800":
		return "135"
	case "bg-orange-100 text-orange-800":
		return "208"
	case "bg-green-100 text-green-800":
		return "42"
	case "bg-red-100 text-red-800":
		return "196"
	}
	return "245"
}
