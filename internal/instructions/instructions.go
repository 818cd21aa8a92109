// Package instructions renders the Logfire usage documentation appended to
// a project's agent file. Output is a pure function of the selected
// integrations and the MCP flag: identical input produces byte-identical
// text.
package instructions

import (
	"strings"

	"github.com/pydantic/logfire-setup/internal/catalog"
)

// Group is a semantic bucket used to order the instrumentation section.
type Group int

// Groups in fixed rendering order.
const (
	GroupWebFrameworks Group = iota
	GroupHTTPClients
	GroupDatabases
	GroupLLM
	GroupOther
)

// extraGroups assigns each known extra to its rendering bucket. Extras not
// listed here fall into GroupOther rather than being dropped.
var extraGroups = map[string]Group{
	"fastapi":        GroupWebFrameworks,
	"django":         GroupWebFrameworks,
	"flask":          GroupWebFrameworks,
	"starlette":      GroupWebFrameworks,
	"httpx":          GroupHTTPClients,
	"requests":       GroupHTTPClients,
	"aiohttp-client": GroupHTTPClients,
	"sqlalchemy":     GroupDatabases,
	"asyncpg":        GroupDatabases,
	"psycopg":        GroupDatabases,
	"psycopg2":       GroupDatabases,
	"pymongo":        GroupDatabases,
	"redis":          GroupDatabases,
	"mysql":          GroupDatabases,
	"google-genai":   GroupLLM,
	"litellm":        GroupLLM,
}

// groupFor returns the bucket for an extra, defaulting to GroupOther.
func groupFor(extra string) Group {
	if group, ok := extraGroups[extra]; ok {
		return group
	}
	return GroupOther
}

// Generate renders the complete instruction text: the fixed core block,
// the MCP section when the Logfire MCP server is configured, and the
// instrumentation section when integrations were selected.
func Generate(selected []catalog.Integration, mcpConfigured bool) string {
	var b strings.Builder

	b.WriteString(coreInstructions)

	if mcpConfigured {
		b.WriteString(mcpInstructions)
	}

	if len(selected) > 0 {
		b.WriteString(instrumentationSection(selected))
	}

	return b.String()
}

// instrumentationSection renders per-integration snippets bucketed into
// semantic groups in fixed order.
func instrumentationSection(selected []catalog.Integration) string {
	buckets := make(map[Group][]catalog.Integration)
	for _, integration := range selected {
		group := groupFor(integration.Extra)
		buckets[group] = append(buckets[group], integration)
	}

	var b strings.Builder
	b.WriteString("\n## Instrumentation\n\n```python\n")
	b.WriteString("import logfire\n\nlogfire.configure(send_to_logfire='if-token-present')\n")

	if web := buckets[GroupWebFrameworks]; len(web) > 0 {
		b.WriteString("\n# Web framework\n")
		for _, integration := range web {
			switch integration.Extra {
			case "fastapi":
				b.WriteString("logfire.instrument_fastapi(app)\n")
			case "django":
				b.WriteString("logfire.instrument_django()\n")
			case "flask":
				b.WriteString("logfire.instrument_flask(app)\n")
			case "starlette":
				b.WriteString("logfire.instrument_starlette(app)\n")
			}
		}
	}

	if clients := buckets[GroupHTTPClients]; len(clients) > 0 {
		b.WriteString("\n# HTTP clients\n")
		for _, integration := range clients {
			switch integration.Extra {
			case "httpx":
				b.WriteString("# Global instrumentation (all clients)\n")
				b.WriteString("logfire.instrument_httpx()\n\n")
				b.WriteString("# Per-client instrumentation\n")
				b.WriteString("async with httpx.AsyncClient() as client:\n")
				b.WriteString("    logfire.instrument_httpx(client)\n\n")
				b.WriteString("# Capture all request/response data\n")
				b.WriteString("async with httpx.AsyncClient() as client:\n")
				b.WriteString("    logfire.instrument_httpx(client, capture_request_json_body=True, capture_response_json_body=True)\n")
			case "requests":
				b.WriteString("logfire.instrument_requests()\n")
			case "aiohttp-client":
				b.WriteString("logfire.instrument_aiohttp_client()\n")
			}
		}
	}

	if databases := buckets[GroupDatabases]; len(databases) > 0 {
		b.WriteString("\n# Databases\n")
		for _, integration := range databases {
			switch integration.Extra {
			case "sqlalchemy":
				b.WriteString("logfire.instrument_sqlalchemy(engine=engine)\n")
			case "asyncpg", "psycopg", "psycopg2":
				b.WriteString("# " + integration.DisplayName + " is auto-instrumented\n")
			case "pymongo":
				b.WriteString("logfire.instrument_pymongo()\n")
			case "redis":
				b.WriteString("logfire.instrument_redis()\n")
			}
		}
	}

	if llm := buckets[GroupLLM]; len(llm) > 0 {
		b.WriteString("\n# LLM & AI\n")
		b.WriteString("# Pydantic AI (built-in instrumentation)\n")
		b.WriteString("logfire.instrument_pydantic_ai()\n\n")
		for _, integration := range llm {
			switch integration.Extra {
			case "google-genai":
				b.WriteString("# Google GenAI auto-instrumentation via opentelemetry\n")
			case "litellm":
				b.WriteString("# LiteLLM auto-instrumentation via openinference\n")
			}
		}
	}

	if other := buckets[GroupOther]; len(other) > 0 {
		b.WriteString("\n# Other\n")
		for _, integration := range other {
			switch integration.Extra {
			case "celery":
				b.WriteString("logfire.instrument_celery()\n")
			case "system-metrics":
				b.WriteString("logfire.instrument_system_metrics()\n")
			}
		}
	}

	b.WriteString("```\n\n")
	b.WriteString("For detailed integration docs, see: https://logfire.pydantic.dev/docs/integrations/\n")

	return b.String()
}

const coreInstructions = `# Logfire

## Setup

` + "```python" + `
import logfire

logfire.configure(send_to_logfire='if-token-present')
` + "```" + `

For production, use the ` + "`LOGFIRE_TOKEN`" + ` environment variable with write tokens.

## Logging Patterns

### Spans

Spans create parent-child relationships and measure duration:

` + "```python" + `
with logfire.span('processing_order', order_id=order_id):
    # Your code here
    pass
` + "```" + `

### F-Strings (Python 3.11+)

Logfire automatically extracts variable names from f-strings:

` + "```python" + `
logfire.info(f'Hello {name}')  # Automatically sets name attribute
` + "```" + `

Disable with ` + "`logfire.configure(inspect_arguments=False)`" + ` if needed.

### Structured Attributes

Pass structured data as keyword arguments:

` + "```python" + `
logfire.info('Operation complete', status='success', duration_ms=123)
` + "```" + `

### Exception Handling

Unhandled exceptions are automatically recorded. For caught exceptions:

` + "```python" + `
try:
    risky_operation()
except Exception as e:
    logfire.exception('Operation failed', error_type=type(e).__name__)
` + "```" + `

### Function Tracing

` + "```python" + `
@logfire.instrument()  # Must be first/outermost decorator
def my_function(x, y):
    return x + y
` + "```" + `

## Log Levels

Available: trace, debug, info, notice, warn, error, fatal

` + "```python" + `
with logfire.span('debug_operation', _level='debug'):
    pass
` + "```" + `

## Data Privacy

Logfire automatically scrubs passwords, secrets, API keys, cookies, session tokens, credit cards, SSNs, and JWT tokens.

Use message templates for structured data rather than string concatenation to ensure proper scrubbing.

## Resources

- Docs: https://logfire.pydantic.dev/docs/
- API Reference: https://logfire.pydantic.dev/docs/reference/api/logfire/
`

const mcpInstructions = `
## Using Logfire MCP

The Logfire MCP (Model Context Protocol) server is configured for this project. Use it to:

- **Query your Logfire data** during development
- **Debug issues** by inspecting traces, spans, and logs

`
