package mcpserver

// DocumentFormatContract describes the canonical experiment document format,
// exposed as an MCP resource so assistants know what the corpus looks like.
const DocumentFormatContract = `# Experiment Document Format

Every experiment is a single Markdown file named ` + "`<slug>.md`" + ` (or ` + "`.mdx`" + `)
in the content directory. The slug is the file name stem and never changes.

## Structure

` + "```" + `markdown
---
title: Human-readable title          # REQUIRED
category: backend-database           # REQUIRED - one of the fixed categories
description: One-line summary        # optional
tags:                                # optional
  - postgres
date: 2025-01-15                     # optional, ISO date
author: Vishesh Baghel               # optional, defaults when omitted
ossProject: some-project             # optional
prLink: https://github.com/...       # optional
---

Free-form Markdown body.
` + "```" + `

## Rules

1. Frontmatter fences must open the file; ` + "`title`" + ` and ` + "`category`" + ` are required.
2. ` + "`category`" + ` must be one of: getting-started, ai-agents, backend-database,
   typescript-patterns.
3. Unknown frontmatter keys are tolerated and ignored.
4. Served content always ends with a generated attribution footer; the footer
   is not part of the stored file.
`
