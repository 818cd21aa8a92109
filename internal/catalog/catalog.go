// Package catalog defines the static registry of Logfire integrations and
// the categories they are grouped into. The catalog is loaded once at
// process start and never mutated.
package catalog

import (
	"sort"
	"strings"
)

// Integration represents a single Logfire integration backed by a package
// extra of the logfire distribution.
type Integration struct {
	// Extra is the logfire package extra installed for this integration.
	Extra string

	// DisplayName is the human-readable integration name.
	DisplayName string

	// Description is a one-line summary shown in the selection prompt.
	Description string

	// PackagePatterns are package names whose presence in a project's
	// dependency set marks this integration as detected. Matching is
	// exact and case-insensitive.
	PackagePatterns []string
}

// Category groups related integrations under a name and description.
type Category struct {
	Name         string
	Description  string
	Integrations []Integration
}

// Categories is the full integration catalog in declaration order.
// The Recommended category is always first.
var Categories = []Category{
	{
		Name:        "Recommended",
		Description: "Most commonly used integrations",
		Integrations: []Integration{
			{
				Extra:           "httpx",
				DisplayName:     "HTTPX",
				Description:     "HTTPX HTTP client library",
				PackagePatterns: []string{"httpx"},
			},
			{
				Extra:           "fastapi",
				DisplayName:     "FastAPI",
				Description:     "FastAPI framework instrumentation",
				PackagePatterns: []string{"fastapi"},
			},
			{
				Extra:           "pydantic-ai",
				DisplayName:     "Pydantic AI",
				Description:     "Pydantic AI agent framework instrumentation",
				PackagePatterns: []string{"pydantic-ai", "pydantic_ai"},
			},
			{
				Extra:           "sqlalchemy",
				DisplayName:     "SQLAlchemy",
				Description:     "SQLAlchemy ORM instrumentation",
				PackagePatterns: []string{"sqlalchemy"},
			},
		},
	},
	{
		Name:        "Web Frameworks",
		Description: "Web framework instrumentation",
		Integrations: []Integration{
			{
				Extra:           "django",
				DisplayName:     "Django",
				Description:     "Django web framework (includes ASGI support)",
				PackagePatterns: []string{"django"},
			},
			{
				Extra:           "flask",
				DisplayName:     "Flask",
				Description:     "Flask framework instrumentation",
				PackagePatterns: []string{"flask"},
			},
			{
				Extra:           "starlette",
				DisplayName:     "Starlette",
				Description:     "Starlette framework instrumentation",
				PackagePatterns: []string{"starlette"},
			},
			{
				Extra:           "asgi",
				DisplayName:     "ASGI",
				Description:     "ASGI application instrumentation",
				PackagePatterns: []string{"asgi", "uvicorn", "hypercorn"},
			},
			{
				Extra:           "wsgi",
				DisplayName:     "WSGI",
				Description:     "WSGI application instrumentation",
				PackagePatterns: []string{"wsgi", "gunicorn"},
			},
		},
	},
	{
		Name:        "HTTP Clients",
		Description: "HTTP client library instrumentation",
		Integrations: []Integration{
			{
				Extra:           "requests",
				DisplayName:     "Requests",
				Description:     "Python Requests library HTTP client",
				PackagePatterns: []string{"requests"},
			},
			{
				Extra:           "aiohttp-client",
				DisplayName:     "aiohttp Client",
				Description:     "aiohttp HTTP client tracing",
				PackagePatterns: []string{"aiohttp"},
			},
			{
				Extra:           "aiohttp-server",
				DisplayName:     "aiohttp Server",
				Description:     "aiohttp server/web framework",
				PackagePatterns: []string{"aiohttp"},
			},
		},
	},
	{
		Name:        "Databases",
		Description: "Database client instrumentation",
		Integrations: []Integration{
			{
				Extra:           "asyncpg",
				DisplayName:     "asyncpg",
				Description:     "asyncpg PostgreSQL async driver",
				PackagePatterns: []string{"asyncpg"},
			},
			{
				Extra:           "psycopg",
				DisplayName:     "psycopg",
				Description:     "psycopg PostgreSQL client (v3.x)",
				PackagePatterns: []string{"psycopg"},
			},
			{
				Extra:           "psycopg2",
				DisplayName:     "psycopg2",
				Description:     "psycopg2 PostgreSQL client (legacy)",
				PackagePatterns: []string{"psycopg2", "psycopg2-binary"},
			},
			{
				Extra:           "pymongo",
				DisplayName:     "PyMongo",
				Description:     "PyMongo MongoDB driver",
				PackagePatterns: []string{"pymongo"},
			},
			{
				Extra:           "redis",
				DisplayName:     "Redis",
				Description:     "Redis client instrumentation",
				PackagePatterns: []string{"redis"},
			},
			{
				Extra:           "mysql",
				DisplayName:     "MySQL",
				Description:     "MySQL database driver",
				PackagePatterns: []string{"mysql-connector-python", "pymysql", "mysqlclient"},
			},
			{
				Extra:           "sqlite3",
				DisplayName:     "SQLite3",
				Description:     "SQLite3 database instrumentation",
				PackagePatterns: []string{"sqlite3", "aiosqlite"},
			},
		},
	},
	{
		Name:        "Task Queues",
		Description: "Task queue and message broker instrumentation",
		Integrations: []Integration{
			{
				Extra:           "celery",
				DisplayName:     "Celery",
				Description:     "Celery task queue instrumentation",
				PackagePatterns: []string{"celery"},
			},
		},
	},
	{
		Name:        "Cloud & Serverless",
		Description: "Cloud platform and serverless instrumentation",
		Integrations: []Integration{
			{
				Extra:           "aws-lambda",
				DisplayName:     "AWS Lambda",
				Description:     "AWS Lambda function instrumentation",
				PackagePatterns: []string{"boto3", "botocore"},
			},
		},
	},
	{
		Name:        "LLM & AI",
		Description: "Large language model and AI instrumentation",
		Integrations: []Integration{
			{
				Extra:           "google-genai",
				DisplayName:     "Google GenAI",
				Description:     "Google GenAI instrumentation",
				PackagePatterns: []string{"google-genai", "google-generativeai"},
			},
			{
				Extra:           "litellm",
				DisplayName:     "LiteLLM",
				Description:     "LiteLLM gateway instrumentation",
				PackagePatterns: []string{"litellm"},
			},
		},
	},
	{
		Name:        "System Monitoring",
		Description: "System-level metrics and monitoring",
		Integrations: []Integration{
			{
				Extra:           "system-metrics",
				DisplayName:     "System Metrics",
				Description:     "System-level metrics (CPU, memory, etc.)",
				PackagePatterns: []string{"psutil"},
			},
		},
	},
}

// All returns every integration across all categories in declaration order.
func All() []Integration {
	var integrations []Integration
	for _, category := range Categories {
		integrations = append(integrations, category.Integrations...)
	}
	return integrations
}

// ByExtra looks up an integration by its extra name.
func ByExtra(extra string) (Integration, bool) {
	for _, integration := range All() {
		if integration.Extra == extra {
			return integration, true
		}
	}
	return Integration{}, false
}

// Recommended returns the Recommended category.
func Recommended() Category {
	return Categories[0]
}

// Others returns all integrations outside the Recommended category as one
// flat list sorted alphabetically by display name, matching the selection
// prompt's presentation order.
func Others() []Integration {
	var integrations []Integration
	for _, category := range Categories[1:] {
		integrations = append(integrations, category.Integrations...)
	}

	sort.SliceStable(integrations, func(i, j int) bool {
		return strings.ToLower(integrations[i].DisplayName) < strings.ToLower(integrations[j].DisplayName)
	})

	return integrations
}
