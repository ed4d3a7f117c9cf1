// ABOUTME: Synthetic seed records for the in-memory store
// ABOUTME: Provides the default leads, customers, campaigns, ads, follow-ups, and reports
package seed

import "github.com/harperreed/crmdash/models"

// Data is everything the store is initialised with.
type Data struct {
	Leads       []models.Lead
	Customers   []models.Customer
	Campaigns   []models.Campaign
	Ads         []models.Advertisement
	FollowUps   map[int][]models.FollowUp
	Reports     []models.SalesPersonReport
	LeadDetails map[int][]models.LeadDetail
	Cards       []models.DashboardCard
}

// Default returns a fresh copy of the demo data set.
func Default() Data {
	return Data{
		Leads:       leads(),
		Customers:   customers(),
		Campaigns:   campaigns(),
		Ads:         ads(),
		FollowUps:   followUps(),
		Reports:     reports(),
		LeadDetails: leadDetails(),
		Cards:       cards(),
	}
}

func leads() []models.Lead {
	return []models.Lead{
		{ID: 1, Name: "John Doe", Email: "john@techcorp.com", Company: "Tech Corp", Phone: "+1 (555) 123-4567", Status: models.LeadNew, Value: "$5,000", Source: "Website", CreatedAt: "2024-12-08"},
		{ID: 2, Name: "Jane Smith", Email: "jane@innovate.com", Company: "Innovate LLC", Phone: "+1 (555) 234-5678", Status: models.LeadContacted, Value: "$8,500", Source: "Referral", CreatedAt: "2024-12-07"},
		{ID: 3, Name: "Mike Johnson", Email: "mike@global.com", Company: "Global Systems", Phone: "+1 (555) 345-6789", Status: models.LeadQualified, Value: "$12,000", Source: "LinkedIn", CreatedAt: "2024-12-06"},
		{ID: 4, Name: "Sarah Williams", Email: "sarah@digital.com", Company: "Digital Solutions", Phone: "+1 (555) 456-7890", Status: models.LeadNew, Value: "$6,200", Source: "Website", CreatedAt: "2024-12-05"},
		{ID: 5, Name: "Robert Brown", Email: "robert@enterprise.com", Company: "Enterprise Inc", Phone: "+1 (555) 567-8901", Status: models.LeadProposal, Value: "$25,000", Source: "Cold Call", CreatedAt: "2024-12-04"},
		{ID: 6, Name: "Emily Davis", Email: "emily@startup.com", Company: "Startup Hub", Phone: "+1 (555) 678-9012", Status: models.LeadWon, Value: "$15,000", Source: "Email Campaign", CreatedAt: "2024-12-03"},
		{ID: 7, Name: "David Martinez", Email: "david@solutions.com", Company: "Solutions Group", Phone: "+1 (555) 789-0123", Status: models.LeadContacted, Value: "$9,500", Source: "Trade Show", CreatedAt: "2024-12-02"},
		{ID: 8, Name: "Lisa Anderson", Email: "lisa@consulting.com", Company: "Consulting Pro", Phone: "+1 (555) 890-1234", Status: models.LeadLost, Value: "$7,800", Source: "Website", CreatedAt: "2024-12-01"},
	}
}

func followUps() map[int][]models.FollowUp {
	return map[int][]models.FollowUp{
		1: {
			{ID: 1, Date: "2024-12-08", Type: models.FollowUpEmail, Description: "Sent initial introduction email with product information", Outcome: "Lead opened email and expressed interest"},
			{ID: 2, Date: "2024-12-07", Type: models.FollowUpCall, Description: "Follow-up call to discuss pricing", Outcome: "Scheduled demo for next week"},
		},
		2: {
			{ID: 3, Date: "2024-12-07", Type: models.FollowUpCall, Description: "Initial discovery call", Outcome: "Identified key pain points and needs"},
			{ID: 4, Date: "2024-12-05", Type: models.FollowUpMeeting, Description: "Product demo meeting", Outcome: "Very positive response, discussing next steps"},
			{ID: 5, Date: "2024-12-03", Type: models.FollowUpEmail, Description: "Sent proposal document", Outcome: "Awaiting feedback"},
		},
		3: {
			{ID: 6, Date: "2024-12-06", Type: models.FollowUpMeeting, Description: "Qualification meeting with decision makers", Outcome: "Budget confirmed, moving to proposal stage"},
			{ID: 7, Date: "2024-12-04", Type: models.FollowUpNote, Description: "Research on company background and competitors", Outcome: "Identified unique value proposition"},
		},
	}
}

func customers() []models.Customer {
	return []models.Customer{
		{ID: 1, Name: "Emily Davis", Email: "emily@startup.com", Company: "Startup Hub", Phone: "+1 (555) 678-9012", Status: models.CustomerActive, TotalValue: "$15,000", LastContact: "2024-12-08", JoinedDate: "2024-12-03"},
		{ID: 2, Name: "Michael Chen", Email: "michael@techsolutions.com", Company: "Tech Solutions Inc", Phone: "+1 (555) 234-8765", Status: models.CustomerActive, TotalValue: "$32,500", LastContact: "2024-12-07", JoinedDate: "2024-11-15"},
		{ID: 3, Name: "Sarah Johnson", Email: "sarah@enterprise.com", Company: "Enterprise Co", Phone: "+1 (555) 345-2109", Status: models.CustomerActive, TotalValue: "$48,000", LastContact: "2024-12-09", JoinedDate: "2024-10-20"},
		{ID: 4, Name: "Robert Williams", Email: "robert@globalcorp.com", Company: "Global Corp", Phone: "+1 (555) 456-7821", Status: models.CustomerInactive, TotalValue: "$12,000", LastContact: "2024-11-20", JoinedDate: "2024-09-05"},
		{ID: 5, Name: "Lisa Anderson", Email: "lisa@innovate.com", Company: "Innovate LLC", Phone: "+1 (555) 567-3456", Status: models.CustomerActive, TotalValue: "$25,800", LastContact: "2024-12-10", JoinedDate: "2024-11-01"},
		{ID: 6, Name: "James Martinez", Email: "james@digital.com", Company: "Digital Media", Phone: "+1 (555) 678-9876", Status: models.CustomerPending, TotalValue: "$0", LastContact: "2024-12-09", JoinedDate: "2024-12-09"},
	}
}

func campaigns() []models.Campaign {
	return []models.Campaign{
		{ID: 1, Name: "Summer Product Launch 2024", Status: models.CampaignActive, StartDate: "2024-06-01", EndDate: "2024-08-31", TotalBudget: 50000, SpentBudget: 32500, RemainingBudget: 17500, Channel: "Multi-channel", TargetAudience: "SMB Tech Companies", LeadsGenerated: 245},
		{ID: 2, Name: "Email Marketing Q4", Status: models.CampaignActive, StartDate: "2024-10-01", EndDate: "2024-12-31", TotalBudget: 25000, SpentBudget: 8750, RemainingBudget: 16250, Channel: "Email", TargetAudience: "Enterprise Clients", LeadsGenerated: 128},
		{ID: 3, Name: "Social Media Brand Awareness", Status: models.CampaignActive, StartDate: "2024-11-01", EndDate: "2025-01-31", TotalBudget: 35000, SpentBudget: 12250, RemainingBudget: 22750, Channel: "Social Media", TargetAudience: "Millennials", LeadsGenerated: 189},
		{ID: 4, Name: "Google Ads - Product Demo", Status: models.CampaignPlanned, StartDate: "2025-01-15", EndDate: "2025-03-15", TotalBudget: 40000, SpentBudget: 0, RemainingBudget: 40000, Channel: "Search Ads", TargetAudience: "B2B Decision Makers", LeadsGenerated: 0},
		{ID: 5, Name: "Content Marketing Initiative", Status: models.CampaignActive, StartDate: "2024-09-01", EndDate: "2024-12-31", TotalBudget: 30000, SpentBudget: 22500, RemainingBudget: 7500, Channel: "Content", TargetAudience: "Tech Professionals", LeadsGenerated: 312},
		{ID: 6, Name: "Trade Show Sponsorship", Status: models.CampaignPaused, StartDate: "2024-08-01", EndDate: "2024-09-30", TotalBudget: 60000, SpentBudget: 45000, RemainingBudget: 15000, Channel: "Events", TargetAudience: "Industry Leaders", LeadsGenerated: 156},
		{ID: 7, Name: "Holiday Special Promotion", Status: models.CampaignCompleted, StartDate: "2024-11-15", EndDate: "2024-12-25", TotalBudget: 45000, SpentBudget: 45000, RemainingBudget: 0, Channel: "Multi-channel", TargetAudience: "All Segments", LeadsGenerated: 423},
	}
}

func ads() []models.Advertisement {
	return []models.Advertisement{
		{ID: 1, CampaignID: 1, AdName: "Summer Sale Banner - Homepage", Status: models.AdRunning, Platform: "Google Ads", AdType: "Display", Budget: 5000, Spent: 3250, Impressions: 125000, Clicks: 3750, Conversions: 245, StartDate: "2024-06-01", EndDate: "2024-08-31", CreatedDate: "2024-05-15"},
		{ID: 2, CampaignID: 1, AdName: "Video Ad - Product Demo", Status: models.AdRunning, Platform: "YouTube", AdType: "Video", Budget: 8000, Spent: 5500, Impressions: 250000, Clicks: 8200, Conversions: 412, StartDate: "2024-06-15", EndDate: "2024-08-31", CreatedDate: "2024-05-20"},
		{ID: 3, CampaignID: 2, AdName: "Newsletter Promotion - Q4 Special", Status: models.AdApproved, Platform: "Email", AdType: "Email Campaign", Budget: 2500, Spent: 875, Impressions: 45000, Clicks: 2340, Conversions: 128, StartDate: "2024-10-01", EndDate: "2024-12-31", CreatedDate: "2024-09-15"},
		{ID: 4, CampaignID: 3, AdName: "Instagram Story - Brand Showcase", Status: models.AdRunning, Platform: "Instagram", AdType: "Story", Budget: 4000, Spent: 2100, Impressions: 180000, Clicks: 5400, Conversions: 189, StartDate: "2024-11-01", EndDate: "2025-01-31", CreatedDate: "2024-10-20"},
		{ID: 5, CampaignID: 3, AdName: "Facebook Carousel - Product Features", Status: models.AdRunning, Platform: "Facebook", AdType: "Carousel", Budget: 3500, Spent: 1850, Impressions: 95000, Clicks: 3200, Conversions: 156, StartDate: "2024-11-05", EndDate: "2025-01-31", CreatedDate: "2024-10-25"},
		{ID: 6, CampaignID: 4, AdName: "Search Ad - Demo Request", Status: models.AdInReview, Platform: "Google Ads", AdType: "Search", Budget: 6000, StartDate: "2025-01-15", EndDate: "2025-03-15", CreatedDate: "2024-12-01"},
		{ID: 7, CampaignID: 4, AdName: "Display Ad - Feature Highlights", Status: models.AdDraft, Platform: "Google Ads", AdType: "Display", Budget: 4500, StartDate: "2025-01-20", EndDate: "2025-03-15", CreatedDate: "2024-12-05"},
		{ID: 8, CampaignID: 5, AdName: "LinkedIn Sponsored Content", Status: models.AdRunning, Platform: "LinkedIn", AdType: "Sponsored", Budget: 5500, Spent: 4200, Impressions: 78000, Clicks: 2850, Conversions: 312, StartDate: "2024-09-01", EndDate: "2024-12-31", CreatedDate: "2024-08-20"},
		{ID: 9, CampaignID: 2, AdName: "Promotional Email - Holiday Sale", Status: models.AdApproved, Platform: "Email", AdType: "Email Campaign", Budget: 1800, Spent: 650, Impressions: 32000, Clicks: 1560, Conversions: 98, StartDate: "2024-11-15", EndDate: "2024-12-25", CreatedDate: "2024-11-01"},
		{ID: 10, CampaignID: 3, AdName: "Twitter Campaign - Thought Leadership", Status: models.AdPaused, Platform: "Twitter", AdType: "Promoted Tweet", Budget: 2200, Spent: 1100, Impressions: 65000, Clicks: 1950, Conversions: 87, StartDate: "2024-11-10", EndDate: "2025-01-31", CreatedDate: "2024-11-01"},
	}
}

func reports() []models.SalesPersonReport {
	return []models.SalesPersonReport{
		{ID: 1, Name: "Sarah Johnson", TotalLeads: 12, NewLeads: 2, ContactedLeads: 4, QualifiedLeads: 3, ProposalLeads: 2, WonLeads: 1, LostLeads: 0, TotalFollowUps: 48, AvgFollowUpsPerLead: 4.0},
		{ID: 2, Name: "Michael Chen", TotalLeads: 8, NewLeads: 1, ContactedLeads: 3, QualifiedLeads: 2, ProposalLeads: 1, WonLeads: 1, LostLeads: 0, TotalFollowUps: 32, AvgFollowUpsPerLead: 4.0},
		{ID: 3, Name: "Emily Rodriguez", TotalLeads: 15, NewLeads: 3, ContactedLeads: 5, QualifiedLeads: 4, ProposalLeads: 1, WonLeads: 2, LostLeads: 0, TotalFollowUps: 67, AvgFollowUpsPerLead: 4.5},
		{ID: 4, Name: "David Martinez", TotalLeads: 10, NewLeads: 2, ContactedLeads: 3, QualifiedLeads: 2, ProposalLeads: 2, WonLeads: 0, LostLeads: 1, TotalFollowUps: 38, AvgFollowUpsPerLead: 3.8},
		{ID: 5, Name: "Jessica Brown", TotalLeads: 6, NewLeads: 1, ContactedLeads: 2, QualifiedLeads: 1, ProposalLeads: 1, WonLeads: 1, LostLeads: 0, TotalFollowUps: 24, AvgFollowUpsPerLead: 4.0},
	}
}

func leadDetails() map[int][]models.LeadDetail {
	return map[int][]models.LeadDetail{
		1: {
			{ID: 1, LeadName: "John Doe", Company: "Tech Corp", Status: "New", FollowUpCount: 2, LastContact: "2024-12-08"},
			{ID: 2, LeadName: "Jane Smith", Company: "Innovate LLC", Status: "Contacted", FollowUpCount: 5, LastContact: "2024-12-07"},
			{ID: 3, LeadName: "Mike Johnson", Company: "Global Systems", Status: "Qualified", FollowUpCount: 6, LastContact: "2024-12-06"},
		},
		2: {
			{ID: 4, LeadName: "Sarah Williams", Company: "Digital Solutions", Status: "New", FollowUpCount: 3, LastContact: "2024-12-05"},
			{ID: 5, LeadName: "Robert Brown", Company: "Enterprise Inc", Status: "Proposal", FollowUpCount: 7, LastContact: "2024-12-04"},
		},
		3: {
			{ID: 6, LeadName: "Emily Davis", Company: "Startup Hub", Status: "Won", FollowUpCount: 8, LastContact: "2024-12-03"},
			{ID: 7, LeadName: "David Martinez", Company: "Solutions Group", Status: "Contacted", FollowUpCount: 4, LastContact: "2024-12-02"},
			{ID: 8, LeadName: "Lisa Anderson", Company: "Consulting Pro", Status: "Qualified", FollowUpCount: 5, LastContact: "2024-12-01"},
		},
	}
}

func cards() []models.DashboardCard {
	return []models.DashboardCard{
		{Title: "Total Leads", Value: "248", Icon: "👥", Trend: "12%", TrendUp: true},
		{Title: "Active Deals", Value: "42", Icon: "💼", Trend: "8%", TrendUp: true},
		{Title: "Closed Won", Value: "18", Icon: "✅", Trend: "5%", TrendUp: true},
		{Title: "Revenue", Value: "$125K", Icon: "💰", Trend: "15%", TrendUp: true},
	}
}
