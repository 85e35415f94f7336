package domain

import "context"

// ProjectListing is a portfolio entry. The list is compiled in and
// read-only; there is no lifecycle beyond process startup.
type ProjectListing struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
}

// ProjectUsecase exposes the read-only project listings
type ProjectUsecase interface {
	ListProjects(ctx context.Context) []ProjectListing
}

// Projects returns the static portfolio entries served to the frontend.
func Projects() []ProjectListing {
	return []ProjectListing{
		{
			Title:       "Modern E-commerce Platform",
			Description: "A full-stack e-commerce website with modern UI, secure authentication, and comprehensive product management.",
			Image:       "/images/ecommerce.jpg",
			Technologies: []string{
				"React",
				"TypeScript",
				"Node.js",
				"Express",
				"MongoDB",
				"Redux Toolkit",
				"Tailwind CSS",
				"JWT",
			},
			Features: []string{
				"Modern and responsive UI design",
				"Product browsing with filtering and search",
				"Shopping cart functionality",
				"User authentication and account management",
				"Secure checkout process",
				"Order tracking",
				"Admin dashboard",
			},
			LiveURL:   "https://modern-ecommerce-demo.vercel.app",
			GithubURL: "https://github.com/hashirsyed/modern-ecommerce",
		},
	}
}
