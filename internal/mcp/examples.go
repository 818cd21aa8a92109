package mcp

// ConfigExample returns an MCP configuration snippet for a given IDE or
// agent tool. Unknown names fall back to the cursor example.
func ConfigExample(ide string) string {
	if example, ok := configExamples[ide]; ok {
		return example
	}
	return configExamples["cursor"]
}

var configExamples = map[string]string{
	"cursor": `{
  "mcpServers": {
    "logfire": {
      "command": "uvx",
      "args": ["logfire-mcp@latest", "--read-token=YOUR_TOKEN"]
    }
  }
}`,
	"claude-desktop": `{
  "mcpServers": {
    "logfire": {
      "command": ["uvx"],
      "args": ["logfire-mcp@latest"],
      "type": "stdio",
      "env": {
        "LOGFIRE_READ_TOKEN": "YOUR_TOKEN"
      }
    }
  }
}`,
	"cline": `{
  "mcpServers": {
    "logfire": {
      "command": "uvx",
      "args": ["logfire-mcp@latest"],
      "env": {
        "LOGFIRE_READ_TOKEN": "YOUR_TOKEN"
      },
      "disabled": false,
      "autoApprove": []
    }
  }
}`,
	"claude-code": `Run: claude mcp add logfire -e LOGFIRE_READ_TOKEN=YOUR_TOKEN -- uvx logfire-mcp@latest`,
	"vs-code": `{
  "servers": {
    "logfire": {
      "type": "stdio",
      "command": "uvx",
      "args": ["logfire-mcp@latest"],
      "env": {
        "LOGFIRE_READ_TOKEN": "YOUR_TOKEN"
      }
    }
  }
}`,
	"zed": `{
  "context_servers": {
    "logfire": {
      "source": "custom",
      "command": "uvx",
      "args": ["logfire-mcp@latest"],
      "env": {
        "LOGFIRE_READ_TOKEN": "YOUR_TOKEN"
      },
      "enabled": true
    }
  }
}`,
}
