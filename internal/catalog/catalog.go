// Package catalog holds the static, language-keyed catalog of verified
// repositories to ingest. The catalog is configuration, not discovery: it
// is passed explicitly into the ingestor and never mutated.
package catalog

import "github.com/thothlabs/codecorpus/internal/core/domain"

// Default returns the verified repository catalog.
// Every entry has been checked to exist and be publicly accessible.
func Default() domain.Catalog {
	return domain.Catalog{
		"python": {
			{
				URL:         "https://github.com/tiangolo/fastapi",
				Name:        "fastapi",
				Description: "FastAPI framework, high performance, web APIs",
				Language:    "python",
				Stars:       65000,
				Topics:      []string{"api", "async", "python3", "web-framework"},
				Frameworks:  []string{"FastAPI", "Pydantic"},
			},
			{
				URL:         "https://github.com/langchain-ai/langchain",
				Name:        "langchain",
				Description: "Building LLM applications",
				Language:    "python",
				Stars:       75000,
				Topics:      []string{"ai", "llm", "machine-learning", "nlp"},
				Frameworks:  []string{"LangChain"},
			},
			{
				URL:         "https://github.com/pytorch/pytorch",
				Name:        "pytorch",
				Description: "Deep learning framework",
				Language:    "python",
				Stars:       73000,
				Topics:      []string{"deep-learning", "machine-learning", "ai", "neural-networks"},
				Frameworks:  []string{"PyTorch"},
			},
			{
				URL:         "https://github.com/huggingface/transformers",
				Name:        "transformers",
				Description: "State-of-the-art Machine Learning",
				Language:    "python",
				Stars:       115000,
				Topics:      []string{"nlp", "machine-learning", "transformers", "ai"},
				Frameworks:  []string{"PyTorch", "TensorFlow"},
			},
			{
				URL:         "https://github.com/scrapy/scrapy",
				Name:        "scrapy",
				Description: "Web scraping framework",
				Language:    "python",
				Stars:       49000,
				Topics:      []string{"web-scraping", "crawler", "spider", "automation"},
				Frameworks:  []string{"Scrapy"},
			},
			{
				URL:         "https://github.com/streamlit/streamlit",
				Name:        "streamlit",
				Description: "Web apps for Machine Learning",
				Language:    "python",
				Stars:       28000,
				Topics:      []string{"web-apps", "data-science", "ml-apps", "dashboard"},
				Frameworks:  []string{"Streamlit"},
			},
			{
				URL:         "https://github.com/django/django",
				Name:        "django",
				Description: "Web framework for perfectionists",
				Language:    "python",
				Stars:       73000,
				Topics:      []string{"web-framework", "python3", "orm", "mvc"},
				Frameworks:  []string{"Django"},
			},
			{
				URL:         "https://github.com/numpy/numpy",
				Name:        "numpy",
				Description: "Scientific computing in Python",
				Language:    "python",
				Stars:       24000,
				Topics:      []string{"scientific-computing", "arrays", "mathematics", "data-science"},
				Frameworks:  []string{"NumPy"},
			},
		},
		"typescript": {
			{
				URL:         "https://github.com/microsoft/TypeScript",
				Name:        "TypeScript",
				Description: "JavaScript with syntax for types",
				Language:    "typescript",
				Stars:       94000,
				Topics:      []string{"typescript", "javascript", "compiler", "language"},
				Frameworks:  []string{"TypeScript"},
			},
			{
				URL:         "https://github.com/nestjs/nest",
				Name:        "nest",
				Description: "Progressive Node.js framework",
				Language:    "typescript",
				Stars:       60000,
				Topics:      []string{"nodejs", "typescript", "server", "framework"},
				Frameworks:  []string{"NestJS", "Express"},
			},
			{
				URL:         "https://github.com/prisma/prisma",
				Name:        "prisma",
				Description: "Next-generation ORM for Node.js & TypeScript",
				Language:    "typescript",
				Stars:       34000,
				Topics:      []string{"orm", "database", "typescript", "nodejs"},
				Frameworks:  []string{"Prisma"},
			},
			{
				URL:         "https://github.com/trpc/trpc",
				Name:        "trpc",
				Description: "End-to-end typesafe APIs",
				Language:    "typescript",
				Stars:       30000,
				Topics:      []string{"api", "typescript", "rpc", "full-stack"},
				Frameworks:  []string{"tRPC"},
			},
			{
				URL:         "https://github.com/supabase/supabase",
				Name:        "supabase",
				Description: "Open source Firebase alternative",
				Language:    "typescript",
				Stars:       58000,
				Topics:      []string{"database", "authentication", "realtime", "backend"},
				Frameworks:  []string{"Supabase", "PostgreSQL"},
			},
			{
				URL:         "https://github.com/angular/angular",
				Name:        "angular",
				Description: "Modern web development platform",
				Language:    "typescript",
				Stars:       89000,
				Topics:      []string{"web", "framework", "angular", "spa"},
				Frameworks:  []string{"Angular"},
			},
			{
				URL:         "https://github.com/remix-run/remix",
				Name:        "remix",
				Description: "Full stack web framework",
				Language:    "typescript",
				Stars:       24000,
				Topics:      []string{"web", "framework", "react", "full-stack"},
				Frameworks:  []string{"Remix", "React"},
			},
			{
				URL:         "https://github.com/jestjs/jest",
				Name:        "jest",
				Description: "JavaScript Testing Framework",
				Language:    "typescript",
				Stars:       42000,
				Topics:      []string{"testing", "jest", "javascript", "typescript"},
				Frameworks:  []string{"Jest"},
			},
		},
	}
}
