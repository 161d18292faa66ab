package domain

// Settings is the single campaign-wide settings document.
type Settings struct {
	CampaignName string `json:"campaignName"`
	Description  string `json:"description,omitempty"`
	AccentColor  string `json:"accentColor,omitempty"`
	BannerURL    string `json:"bannerUrl,omitempty"`
}
