// AngelaMos | 2026
// seed.go

package catalog

func allEnabled() Settings {
	return Settings{
		EnableQuestions:     true,
		EnableCalls:         true,
		EnableProducts:      true,
		EnableShoutouts:     true,
		EnableHiring:        true,
		EnablePrivateGroups: true,
		EnableTips:          true,
		EnableWaitlist:      true,
		EnableFavorites:     true,
	}
}

func defaultWaitlist() *WaitlistConfig {
	return &WaitlistConfig{
		Description:       "Join my waitlist to be notified when I have availability. Limited spots are available!",
		EstimatedWaitTime: "2-4 weeks",
	}
}

// Seed returns the demo creator profiles. Prices and ids are stable; tests
// depend on them.
func Seed() []*Creator {
	return []*Creator{
		{
			Username:  "johndoe",
			Name:      "John Doe",
			Bio:       "Digital creator and web developer. Ask me anything about React and web development!",
			AvatarURL: "https://i.pravatar.cc/300?img=1",
			QuestionResponseOptions: []QuestionResponseOption{
				{
					ID:                    "qro1",
					Type:                  ResponseText,
					Title:                 "Text Response",
					Description:           "I will answer your question with a detailed text response",
					Price:                 5,
					EstimatedResponseTime: "24-48 hours",
				},
				{
					ID:                    "qro2",
					Type:                  ResponseVideo,
					Title:                 "Video Response",
					Description:           "I will record a video answering your question in detail",
					Price:                 25,
					EstimatedResponseTime: "3-5 days",
				},
				{
					ID:                    "qro3",
					Type:                  ResponseAudio,
					Title:                 "Audio Response",
					Description:           "I will record an audio message answering your question",
					Price:                 15,
					EstimatedResponseTime: "2-3 days",
				},
			},
			CallPrice: PriceRange{Min: 25, Max: 200},
			Products: []Product{
				{
					ID:          "1",
					Title:       "React Mastery Course",
					Description: "A comprehensive course that takes you from React basics to advanced patterns",
					Price:       49.99,
					ImageURL:    "https://picsum.photos/seed/react/300/200",
					Type:        ProductDigital,
				},
				{
					ID:          "2",
					Title:       "Web Dev Notebook",
					Description: "Hardcover notebook with code snippets and dev tips printed on each page",
					Price:       24.99,
					ImageURL:    "https://picsum.photos/seed/notebook/300/200",
					Type:        ProductPhysical,
				},
			},
			ShoutoutOptions: []ShoutoutOption{
				{
					ID:           "so1",
					Title:        "Twitter/X Mention",
					Description:  "I will give you a shoutout in a tweet to my followers",
					Price:        15,
					DeliveryTime: "24-48 hours",
				},
				{
					ID:           "so2",
					Title:        "GitHub Project Star",
					Description:  "I will review your GitHub project, star it, and share it with my developer network",
					Price:        25,
					DeliveryTime: "3-5 days",
				},
			},
			HireServices: []HireService{
				{
					ID:           "hs1",
					Title:        "Custom Web Development",
					Description:  "I will build a custom website or web application for your business or personal needs",
					Price:        1500,
					TimeEstimate: "2-3 weeks",
				},
				{
					ID:           "hs2",
					Title:        "Code Review & Optimization",
					Description:  "I will review your existing codebase and provide optimization recommendations",
					Price:        250,
					TimeEstimate: "3-5 days",
				},
			},
			PrivateGroups: []PrivateGroup{
				{
					ID:            "pg1",
					Name:          "Dev Inner Circle",
					Description:   "Join my private developer community with weekly live coding sessions and exclusive content",
					MembershipFee: 19.99,
					BillingCycle:  BillingMonthly,
					Benefits: []string{
						"Weekly live coding sessions",
						"Private Discord access",
						"Code reviews",
						"Early access to new courses",
					},
				},
			},
			Favorites: []Favorite{
				{
					ID:          "fav-1",
					Title:       "VS Code",
					Description: "My favorite code editor with great extensions for web development",
					ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9a/Visual_Studio_Code_1.35_icon.svg/1200px-Visual_Studio_Code_1.35_icon.svg.png",
					Link:        "https://code.visualstudio.com/",
					Category:    "Development Tools",
				},
				{
					ID:          "fav-2",
					Title:       "React Documentation",
					Description: "The best resource for learning React from the ground up",
					ImageURL:    "https://reactjs.org/logo-og.png",
					Link:        "https://reactjs.org/docs/getting-started.html",
					Category:    "Learning Resources",
				},
				{
					ID:            "fav-3",
					Title:         "Mechanical Keyboard",
					Description:   "My favorite keyboard for coding - improves productivity and feels great",
					ImageURL:      "https://m.media-amazon.com/images/I/71NW1vZEpxL._AC_UY218_.jpg",
					Link:          "https://www.amazon.com/mechanical-keyboards/s?k=mechanical+keyboards",
					Category:      "Hardware",
					AffiliateLink: true,
				},
			},
			WaitlistConfig: defaultWaitlist(),
			Settings:       allEnabled(),
		},
		{
			Username:  "janedoe",
			Name:      "Jane Doe",
			Bio:       "Content creator and social media specialist. I help brands build their online presence.",
			AvatarURL: "https://i.pravatar.cc/300?img=5",
			QuestionResponseOptions: []QuestionResponseOption{
				{
					ID:                    "qro4",
					Type:                  ResponseText,
					Title:                 "Text Response",
					Description:           "I will provide a detailed text response to your question",
					Price:                 10,
					EstimatedResponseTime: "1-2 days",
				},
				{
					ID:                    "qro5",
					Type:                  ResponseVideo,
					Title:                 "Video Response",
					Description:           "I will create a personalized video answering your question",
					Price:                 35,
					EstimatedResponseTime: "3-4 days",
				},
			},
			CallPrice: PriceRange{Min: 50, Max: 150},
			Products: []Product{
				{
					ID:          "3",
					Title:       "Social Media Playbook",
					Description: "My top strategies for growing your audience across all major platforms",
					Price:       39.99,
					ImageURL:    "https://picsum.photos/seed/playbook/300/200",
					Type:        ProductDigital,
				},
				{
					ID:          "4",
					Title:       "Content Calendar Template",
					Description: "Premium template to plan your content 12 months in advance",
					Price:       19.99,
					ImageURL:    "https://picsum.photos/seed/calendar/300/200",
					Type:        ProductDigital,
				},
				{
					ID:          "5",
					Title:       "Content Creator Hoodie",
					Description: "Premium hoodie with minimalist design",
					Price:       59.99,
					ImageURL:    "https://picsum.photos/seed/hoodie/300/200",
					Type:        ProductPhysical,
				},
			},
			ShoutoutOptions: []ShoutoutOption{
				{
					ID:           "so3",
					Title:        "Instagram Story Mention",
					Description:  "I will mention you or your brand in my Instagram Story",
					Price:        35,
					DeliveryTime: "24 hours",
				},
				{
					ID:           "so4",
					Title:        "Instagram Post Feature",
					Description:  "I will create a dedicated post featuring your brand or product with my honest review",
					Price:        100,
					DeliveryTime: "3-5 days",
				},
				{
					ID:           "so5",
					Title:        "TikTok Integration",
					Description:  "I will organically mention or showcase your product in one of my TikTok videos",
					Price:        150,
					DeliveryTime: "1 week",
				},
			},
			HireServices: []HireService{
				{
					ID:           "hs3",
					Title:        "Social Media Strategy",
					Description:  "I will create a comprehensive social media strategy tailored to your brand",
					Price:        500,
					TimeEstimate: "1 week",
				},
				{
					ID:           "hs4",
					Title:        "Content Creation Package",
					Description:  "I will create a month's worth of content for your social media platforms",
					Price:        750,
					TimeEstimate: "2 weeks",
				},
			},
			PrivateGroups: []PrivateGroup{
				{
					ID:            "pg2",
					Name:          "Content Creator Club",
					Description:   "Join my exclusive community of content creators for networking, tips, and collaboration opportunities",
					MembershipFee: 24.99,
					BillingCycle:  BillingMonthly,
					Benefits: []string{
						"Monthly masterclass sessions",
						"Private networking community",
						"Early access to my new templates",
						"Collaboration opportunities",
					},
				},
			},
			Favorites: []Favorite{
				{
					ID:            "fav-4",
					Title:         "Ring Light",
					Description:   "Perfect lighting setup for content creation and video calls",
					ImageURL:      "https://m.media-amazon.com/images/I/71jmjOxxT1L._AC_UY218_.jpg",
					Link:          "https://www.amazon.com/ring-lights/s?k=ring+lights",
					Category:      "Content Creation",
					AffiliateLink: true,
				},
				{
					ID:          "fav-5",
					Title:       "Canva Pro",
					Description: "My essential design tool for creating social media graphics and presentations",
					ImageURL:    "https://static.canva.com/static/images/canva_logo_100x100@2x.png",
					Link:        "https://www.canva.com/pro/",
					Category:    "Design Tools",
				},
				{
					ID:            "fav-6",
					Title:         "Social Media Marketing Book",
					Description:   "This book changed my approach to social media strategy",
					ImageURL:      "https://m.media-amazon.com/images/I/61KS7JOJEkL._SY466_.jpg",
					Link:          "https://www.amazon.com/Social-Media-Marketing-All-One/dp/1119696771/",
					Category:      "Books",
					AffiliateLink: true,
				},
			},
			WaitlistConfig: defaultWaitlist(),
			Settings:       allEnabled(),
		},
		{
			Username:  "janelle",
			Name:      "Janelle",
			Bio:       "Fashion influencer. Ask me anything about fashion and sewing!",
			AvatarURL: "https://i.pravatar.cc/300?img=9",
			QuestionResponseOptions: []QuestionResponseOption{
				{
					ID:                    "qro6",
					Type:                  ResponseText,
					Title:                 "Standard Text Response",
					Description:           "I will answer your fashion question with a detailed text response",
					Price:                 15,
					EstimatedResponseTime: "24 hours",
				},
				{
					ID:                    "qro7",
					Type:                  ResponseText,
					Title:                 "Premium Text Response",
					Description:           "I will provide an in-depth answer with fashion recommendations and links to products",
					Price:                 30,
					EstimatedResponseTime: "48 hours",
				},
				{
					ID:                    "qro8",
					Type:                  ResponseVideo,
					Title:                 "Video Style Advice",
					Description:           "I will record a personalized video with style advice and demonstration",
					Price:                 75,
					EstimatedResponseTime: "3-5 days",
				},
			},
			CallPrice: PriceRange{Min: 75, Max: 250},
			Products: []Product{
				{
					ID:          "6",
					Title:       "Fashion Forward E-Book",
					Description: "My guide to predicting and adapting to upcoming fashion trends",
					Price:       29.99,
					ImageURL:    "https://picsum.photos/seed/fashion/300/200",
					Type:        ProductDigital,
				},
				{
					ID:          "7",
					Title:       "Beginner Sewing Patterns Bundle",
					Description: "Digital patterns with step-by-step instructions for creating your first garments",
					Price:       34.99,
					ImageURL:    "https://picsum.photos/seed/sewing/300/200",
					Type:        ProductDigital,
				},
				{
					ID:          "8",
					Title:       "Sustainable Fabric Swatches",
					Description: "Collection of eco-friendly fabric samples with information cards",
					Price:       45.99,
					ImageURL:    "https://picsum.photos/seed/fabric/300/200",
					Type:        ProductPhysical,
				},
				{
					ID:          "9",
					Title:       "Signature Scarf",
					Description: "My limited edition designer scarf made from premium silk",
					Price:       89.99,
					ImageURL:    "https://picsum.photos/seed/scarf/300/200",
					Type:        ProductPhysical,
				},
			},
			ShoutoutOptions: []ShoutoutOption{
				{
					ID:           "so6",
					Title:        "OOTD Instagram Feature",
					Description:  "I will feature your product in my Outfit Of The Day post on Instagram",
					Price:        120,
					DeliveryTime: "1 week",
				},
				{
					ID:           "so7",
					Title:        "Styled Photoshoot",
					Description:  "Professional photos of me styling your product, delivered to you for marketing use",
					Price:        250,
					DeliveryTime: "2 weeks",
				},
			},
			HireServices: []HireService{
				{
					ID:           "hs5",
					Title:        "Custom Fashion Design",
					Description:  "I will design a custom garment or collection based on your requirements",
					Price:        1000,
					TimeEstimate: "1 month",
				},
				{
					ID:           "hs6",
					Title:        "Personal Styling Session",
					Description:  "I will help you define your personal style and create a capsule wardrobe plan",
					Price:        200,
					TimeEstimate: "1 week",
				},
				{
					ID:           "hs7",
					Title:        "Sewing Pattern Creation",
					Description:  "I will create a custom digital sewing pattern based on your design ideas",
					Price:        350,
					TimeEstimate: "2 weeks",
				},
			},
			PrivateGroups: []PrivateGroup{
				{
					ID:            "pg3",
					Name:          "Stitch & Style Society",
					Description:   "My exclusive community for fashion enthusiasts and home sewists",
					MembershipFee: 29.99,
					BillingCycle:  BillingMonthly,
					Benefits: []string{
						"Weekly sewing tutorials",
						"Monthly trend forecasts",
						"Exclusive pattern releases",
						"Community challenges",
						"Direct message access to me",
					},
				},
				{
					ID:            "pg4",
					Name:          "Fashion Industry Insiders",
					Description:   "Premium group for serious fashion professionals with industry connections",
					MembershipFee: 99.99,
					BillingCycle:  BillingQuarterly,
					Benefits: []string{
						"Industry networking events",
						"Trend forecasting workshops",
						"Guest sessions with fashion designers",
						"Early access to fashion week content",
						"Portfolio reviews",
					},
				},
			},
			Favorites: []Favorite{
				{
					ID:            "fav-7",
					Title:         "Sewing Machine",
					Description:   "The best sewing machine for beginners and intermediate sewers",
					ImageURL:      "https://m.media-amazon.com/images/I/71euCOZHBAL._AC_UY218_.jpg",
					Link:          "https://www.amazon.com/sewing-machines/s?k=sewing+machines",
					Category:      "Sewing Equipment",
					AffiliateLink: true,
				},
				{
					ID:          "fav-8",
					Title:       "Sustainable Fabric Shop",
					Description: "My favorite place to source eco-friendly fabrics for projects",
					ImageURL:    "https://images.pexels.com/photos/4614226/pexels-photo-4614226.jpeg",
					Link:        "https://www.spoonflower.com/en/shop/fabric",
					Category:    "Materials",
				},
				{
					ID:          "fav-9",
					Title:       "Fashion Illustration Course",
					Description: "This course helped me improve my design sketching skills",
					ImageURL:    "https://images.pexels.com/photos/6758029/pexels-photo-6758029.jpeg",
					Link:        "https://www.skillshare.com/classes/Fashion-Illustration-Draw-Fashion-Sketches-like-a-Fashion-Designer/1070944309",
					Category:    "Courses",
				},
			},
			WaitlistConfig: defaultWaitlist(),
			Settings:       allEnabled(),
		},
	}
}
