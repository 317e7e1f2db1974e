// AngelaMos | 2026
// dto.go

package catalog

// SettingsPatch is a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	EnableQuestions     *bool `json:"enable_questions,omitempty"`
	EnableCalls         *bool `json:"enable_calls,omitempty"`
	EnableProducts      *bool `json:"enable_products,omitempty"`
	EnableShoutouts     *bool `json:"enable_shoutouts,omitempty"`
	EnableHiring        *bool `json:"enable_hiring,omitempty"`
	EnablePrivateGroups *bool `json:"enable_private_groups,omitempty"`
	EnableTips          *bool `json:"enable_tips,omitempty"`
	EnableWaitlist      *bool `json:"enable_waitlist,omitempty"`
	EnableFavorites     *bool `json:"enable_favorites,omitempty"`
}

func (p SettingsPatch) Apply(s *Settings) {
	if p.EnableQuestions != nil {
		s.EnableQuestions = *p.EnableQuestions
	}
	if p.EnableCalls != nil {
		s.EnableCalls = *p.EnableCalls
	}
	if p.EnableProducts != nil {
		s.EnableProducts = *p.EnableProducts
	}
	if p.EnableShoutouts != nil {
		s.EnableShoutouts = *p.EnableShoutouts
	}
	if p.EnableHiring != nil {
		s.EnableHiring = *p.EnableHiring
	}
	if p.EnablePrivateGroups != nil {
		s.EnablePrivateGroups = *p.EnablePrivateGroups
	}
	if p.EnableTips != nil {
		s.EnableTips = *p.EnableTips
	}
	if p.EnableWaitlist != nil {
		s.EnableWaitlist = *p.EnableWaitlist
	}
	if p.EnableFavorites != nil {
		s.EnableFavorites = *p.EnableFavorites
	}
}
