package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Initialize seeds every document that is still empty with its default value.
// It is idempotent and never touches a document that already has data, so a
// restart cannot clobber edits.
func (s *Store) Initialize(now time.Time) error {
	if err := s.initializeAdmins(now); err != nil {
		return err
	}
	if err := s.initializeContent(); err != nil {
		return err
	}
	if err := s.initializeSettings(); err != nil {
		return err
	}
	return s.initializeBlog()
}

func (s *Store) initializeAdmins(now time.Time) error {
	admins := s.Admins()
	for _, admin := range admins {
		if admin.Username == DefaultAdminUsername {
			return nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}
	admins = append(admins, Admin{
		ID:        "1",
		Username:  DefaultAdminUsername,
		Password:  string(hash),
		CreatedAt: FormatTime(now),
	})
	if err = s.SaveAdmins(admins); err != nil {
		return fmt.Errorf("failed to seed admin document: %w", err)
	}
	slog.Info("default admin created", slog.String("username", DefaultAdminUsername))
	return nil
}

func (s *Store) initializeContent() error {
	if content := s.Content(); len(content) > 0 {
		return nil
	}

	content := Content{}
	for section, value := range DefaultContent() {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal default %s section: %w", section, err)
		}
		content[section] = raw
	}
	if err := s.SaveContent(content); err != nil {
		return fmt.Errorf("failed to seed content document: %w", err)
	}
	slog.Info("default content initialized")
	return nil
}

func (s *Store) initializeSettings() error {
	if _, ok := s.LoadRaw(DocumentSettings); ok {
		return nil
	}
	if err := s.Save(DocumentSettings, DefaultSettings()); err != nil {
		return fmt.Errorf("failed to seed settings document: %w", err)
	}
	slog.Info("default settings initialized")
	return nil
}

func (s *Store) initializeBlog() error {
	if _, ok := s.LoadRaw(DocumentBlog); ok {
		return nil
	}
	if err := s.SaveBlog(Blog{Posts: []Post{}}); err != nil {
		return fmt.Errorf("failed to seed blog document: %w", err)
	}
	slog.Info("blog initialized")
	return nil
}

// DefaultSettings is the factory settings document.
func DefaultSettings() Settings {
	return Settings{
		Version:      "2.0",
		SectionOrder: append([]string(nil), Sections...),
		SectionSpacing: map[string]string{
			"navbar":     "0px",
			"hero":       "0px",
			"highlights": "80px",
			"about":      "100px",
			"focus":      "100px",
			"strategy":   "100px",
			"benefits":   "100px",
			"resources":  "100px",
			"contact":    "100px",
			"footer":     "0px",
		},
		SectionVisibility: map[string]bool{
			"navbar":     true,
			"hero":       true,
			"highlights": true,
			"about":      true,
			"focus":      true,
			"strategy":   true,
			"benefits":   true,
			"resources":  true,
			"contact":    true,
			"footer":     true,
		},
		Colors: map[string]string{
			"primary":       "#F6A86D",
			"primaryDark":   "#f59a52",
			"secondary":     "#5F8B9B",
			"secondaryDark": "#527a89",
			"charcoal":      "#333333",
			"lightGray":     "#F5F5F5",
			"white":         "#FFFFFF",
		},
		Typography: map[string]string{
			"headingFont": "Montserrat",
			"bodyFont":    "Open Sans",
			"h1Size":      "64px",
			"h2Size":      "48px",
			"h3Size":      "28px",
			"bodySize":    "16px",
			"lineHeight":  "1.6",
		},
		CustomCSS: "",
	}
}

// DefaultContent is the full factory site content, one record per section.
func DefaultContent() map[string]any {
	return map[string]any{
		"navbar": Navbar{
			Logo:      "https://assets.cdn.filesafe.space/Out59Sg1pInehCQh9Rc8/media/68e92f9f35e8696fd61d360c.png",
			BrandText: "Orange Door Investment Group",
			Links: []Link{
				{Text: "About", Href: "#about"},
				{Text: "Focus", Href: "#focus"},
				{Text: "Roadmap", Href: "#strategy"},
				{Text: "Why Invest", Href: "#benefits"},
				{Text: "Resources", Href: "#resources"},
				{Text: "Contact", Href: "#contact"},
			},
		},
		"hero": Hero{
			Title:           "Opening Doors to Smarter Real Estate Investments",
			Subtitle:        "Multifamily and Senior Living investments that build wealth, provide stability, and make a lasting impact.",
			BackgroundImage: "https://images.pexels.com/photos/280222/pexels-photo-280222.jpeg?auto=compress&cs=tinysrgb&w=1920",
			Buttons: []Button{
				{Text: "Join Our Investor List", Href: "#contact", Type: "primary"},
				{Text: "Schedule a Call", Href: "https://link.orangedoorinvestmentgroup.com/widget/booking/zWhipZrTkrBoIlzY8i8G", Type: "secondary"},
			},
		},
		"highlights": Highlights{
			Items: []Highlight{
				{Icon: "💰", Title: "Consistent Cash Flow", Description: "Passive income backed by hard assets with quarterly distributions once properties stabilize."},
				{Icon: "📈", Title: "Value-Add Strategy", Description: "Transforming underperforming properties into thriving communities through strategic renovations."},
				{Icon: "🤝", Title: "Trusted Partnerships", Description: "Experienced operators with an investor-first focus and proven track records."},
			},
		},
		"about": About{
			Title:   "About Us",
			Content: "We founded Orange Door Investment Group to open the door for everyday investors to participate in high quality real estate projects with real impact.",
			Team: []TeamMember{
				{
					Name:  "Lara Chapman",
					Role:  "Co-Founder | Asset Management",
					Image: "https://assets.cdn.filesafe.space/Out59Sg1pInehCQh9Rc8/media/68e7d897a54d8835f3212889.jpeg",
					Bio:   "With a foundation in corporate credit and operations, Lara brings structure and accountability to every stage of the investment process.",
				},
				{
					Name:  "Ryan Chapman",
					Role:  "Co-Founder | Investor Relations",
					Image: "https://assets.cdn.filesafe.space/Out59Sg1pInehCQh9Rc8/media/68e4b94cbb291542c6595128.jpeg",
					Bio:   "Ryan brings a sharp eye for opportunity. At Orange Door Investment Group, Ryan leads investor relations and acquisition strategy.",
				},
			},
			CTA: CTA{
				Title:      "Let's Build Something Lasting",
				Paragraph1: "We believe real estate investing should be transparent, collaborative, and rewarding for everyone involved. Whether you are new to passive investing or already expanding your portfolio, we invite you to learn more about our projects and how we work with investors.",
				Paragraph2: "Join our investor list or schedule a call to start the conversation about upcoming opportunities.",
			},
			Partners: []Partner{
				{Name: "NAREIT", Logo: "https://assets.cdn.filesafe.space/Out59Sg1pInehCQh9Rc8/media/68e68e65fa9ccd24016fde76.jpeg"},
				{Name: "Real Estate Association", Logo: "https://assets.cdn.filesafe.space/Out59Sg1pInehCQh9Rc8/media/68e68e655fd99d77bce539de.png"},
				{Name: "Partners", Logo: "https://assets.cdn.filesafe.space/Out59Sg1pInehCQh9Rc8/media/68e7db118040d5fae3a1ae85.jpeg"},
				{Name: "Investment", Logo: "https://assets.cdn.filesafe.space/Out59Sg1pInehCQh9Rc8/media/68e68e651d56c334c7dbc633.png"},
			},
		},
		"focus": Focus{
			Title: "Our Focus",
			Items: []FocusItem{
				{
					Title:       "Multifamily Investments",
					Image:       "https://images.pexels.com/photos/1370704/pexels-photo-1370704.jpeg?auto=compress&cs=tinysrgb&w=1200",
					Description: "We target properties with below market rents, deferred maintenance, or inefficient management.",
				},
				{
					Title:       "Senior Living Communities",
					Image:       "https://images.pexels.com/photos/339620/pexels-photo-339620.jpeg?auto=compress&cs=tinysrgb&w=1200",
					Description: "We focus on Independent Living, Assisted Living, and Memory Care in high demand markets.",
				},
				{
					Title:       "Other Commercial Investments",
					Image:       "https://images.pexels.com/photos/323705/pexels-photo-323705.jpeg?auto=compress&cs=tinysrgb&w=1200",
					Description: "Mobile Home Parks, Self Storage, and Flex Industrial Spaces are considered when the numbers make sense.",
				},
			},
		},
		"strategy": Strategy{
			Title: "Our 6-Step Investment Roadmap",
			Steps: []Step{
				{Number: 1, Title: "Acquire at a Discount", Description: "Target off market or underperforming assets where value can be created."},
				{Number: 2, Title: "Create Value", Description: "Renovate units and improve operations to increase NOI."},
				{Number: 3, Title: "Partner with Experts", Description: "Work with experienced operators who have a proven record."},
				{Number: 4, Title: "Stabilize Quickly", Description: "Lease to target occupancy and lock in efficient processes."},
				{Number: 5, Title: "Refinance Early", Description: "Return capital when the property supports new financing."},
				{Number: 6, Title: "Disciplined Exit", Description: "Sell based on data and market conditions to maximize returns."},
			},
		},
		"benefits": Benefits{
			Title: "Why Invest With Us",
			Items: []Benefit{
				{Title: "Preferred Returns", Description: "Investors are paid first, ensuring your capital receives priority."},
				{Title: "Strong IRR Targets", Description: "Double digit internal rate of return targets and high equity multiples."},
				{Title: "Passive Income", Description: "Quarterly distributions once a property is stabilized."},
				{Title: "Tax Advantages", Description: "Depreciation and cost segregation benefits."},
				{Title: "Risk Mitigation", Description: "Conservative underwriting and proven operators."},
				{Title: "Real Impact", Description: "Better housing for families and dignified communities for seniors."},
			},
		},
		"resources": Resources{
			Title:    "Resources",
			Subtitle: "Investor 101: Essential terms and articles to grow your wealth knowledge.",
			Items: []ResourceItem{
				{Title: "What Is a Real Estate Syndication?", Description: "A real estate syndication allows multiple investors to pool resources and invest in large properties together."},
				{Title: "How Preferred Returns Work", Description: "Preferred returns give investors priority on returns up to a stated annual rate before profits are shared."},
				{Title: "Understanding GP and LP Roles", Description: "General Partners handle operations; Limited Partners contribute capital and earn passive income."},
			},
			DownloadGuide: &DownloadGuide{
				Title:      "Real Assets. Real Returns.",
				Subtitle:   "How Commercial Real Estate Grows and Protects Wealth",
				ButtonText: "Download Free Guide",
				FileURL:    "https://storage.googleapis.com/msgsndr/Out59Sg1pInehCQh9Rc8/media/68e691bf1d56c3e7a2dfe831.pdf",
			},
			Blog: &StaticBlog{
				Title: "Latest Insights",
				Posts: []StaticBlogPost{
					{Title: "Why Senior Living is a Strong Investment", Image: "https://images.pexels.com/photos/263402/pexels-photo-263402.jpeg?auto=compress&cs=tinysrgb&w=800", Description: "Senior living communities meet an essential need with rising demand."},
					{Title: "The Value Add Playbook", Image: "https://images.pexels.com/photos/1571471/pexels-photo-1571471.jpeg?auto=compress&cs=tinysrgb&w=800", Description: "How upgrades create wealth through smart improvements."},
					{Title: "How Refinancing Returns Capital", Image: "https://images.pexels.com/photos/6863183/pexels-photo-6863183.jpeg?auto=compress&cs=tinysrgb&w=800", Description: "Providing liquidity while investors retain ownership."},
				},
			},
		},
		"contact": Contact{
			Title:           "Ready to Explore Passive Real Estate Investing?",
			Description:     "Join our list for early access to opportunities, market updates, and education, or schedule a time to talk with us directly.",
			FormURL:         "https://orangedoorinvestmentgroup.com/investor-sign-up-basic-info-1",
			BackgroundImage: "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=1920",
		},
		"footer": Footer{
			Copyright: "© 2025 Orange Door Investment Group. All rights reserved.",
			Tagline:   "Opening Doors to Smarter Real Estate Investments",
			Buttons: []Button{
				{Text: "Join Our Investor List", Href: "#contact", Type: "primary"},
				{Text: "Schedule a Call", Href: "https://link.orangedoorinvestmentgroup.com/widget/booking/zWhipZrTkrBoIlzY8i8G", Type: "secondary"},
			},
		},
	}
}
