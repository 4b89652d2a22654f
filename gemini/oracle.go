// Package gemini implements the tuxdocs.Oracle interface using Google
// Gemini. Every operation applies the fail-soft policy: transport
// errors and malformed responses degrade to the documented fallback
// value instead of surfacing to callers.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used unless overridden.
const DefaultModel = "gemini-2.5-flash"

// analysisPrefixLimit bounds how much of each document side is sent for
// proposal review. Full bodies are not required to judge a diff.
const analysisPrefixLimit = 1000

// ContentGenerator abstracts the Gemini content-generation call.
// Satisfied by (*genai.Client).Models.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ChatCreator abstracts Gemini chat session creation.
// Satisfied by (*genai.Client).Chats.
type ChatCreator interface {
	Create(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (*genai.Chat, error)
}

// Ensure Oracle implements tuxdocs.Oracle at compile time.
var _ tuxdocs.Oracle = (*Oracle)(nil)

// Oracle implements tuxdocs.Oracle using Google Gemini.
type Oracle struct {
	gen   ContentGenerator
	chats ChatCreator
	model string
}

// NewOracle creates a new Oracle. Pass client.Models and client.Chats
// from a *genai.Client; model may be empty to use DefaultModel.
func NewOracle(gen ContentGenerator, chats ChatCreator, model string) *Oracle {
	if model == "" {
		model = DefaultModel
	}
	return &Oracle{gen: gen, chats: chats, model: model}
}

// generate runs one completion and returns its text. The empty string
// signals failure; callers substitute their fallback.
func (o *Oracle) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) string {
	result, err := o.gen.GenerateContent(ctx, o.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil || result == nil {
		return ""
	}
	return result.Text()
}

// SemanticSearch returns up to three catalog document IDs relevant to
// the query, most relevant first.
func (o *Oracle) SemanticSearch(ctx context.Context, query string, catalog []*tuxdocs.Document) []string {
	if query == "" || len(catalog) == 0 {
		return nil
	}

	text := o.generate(ctx, BuildSearchPrompt(query, catalog), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if text == "" {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(text), &ids); err != nil {
		return nil
	}

	// Only IDs actually present in the catalog count, in case the
	// model hallucinates one.
	known := make(map[string]bool, len(catalog))
	for _, doc := range catalog {
		known[doc.ID] = true
	}
	matched := make([]string, 0, 3)
	for _, id := range ids {
		if !known[id] {
			continue
		}
		matched = append(matched, id)
		if len(matched) == 3 {
			break
		}
	}
	return matched
}

// Summarize produces an executive-brief sidebar for a document body.
func (o *Oracle) Summarize(ctx context.Context, content string) string {
	text := o.generate(ctx, BuildSummarizePrompt(content), nil)
	if text == "" {
		return tuxdocs.SummaryFallback
	}
	return text
}

// GenerateWalkthrough converts a document body into a linear lab.
func (o *Oracle) GenerateWalkthrough(ctx context.Context, content string) []tuxdocs.WalkthroughStep {
	text := o.generate(ctx, BuildWalkthroughPrompt(content), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":        {Type: genai.TypeString, Description: "Short title of the step"},
					"explanation":  {Type: genai.TypeString, Description: "Why are we doing this?"},
					"command":      {Type: genai.TypeString, Description: "The exact bash command to run (empty if conceptual step)"},
					"verification": {Type: genai.TypeString, Description: "How to verify the result"},
				},
				Required: []string{"title", "explanation", "command", "verification"},
			},
		},
	})
	if text == "" {
		return nil
	}

	var steps []tuxdocs.WalkthroughStep
	if err := json.Unmarshal([]byte(text), &steps); err != nil {
		return nil
	}
	return steps
}

// ModernizeDoc rewrites a legacy document using modern standards. The
// original content is returned unchanged on any failure so content is
// never lost.
func (o *Oracle) ModernizeDoc(ctx context.Context, content string) string {
	text := o.generate(ctx, BuildModernizePrompt(content), nil)
	if text == "" {
		return content
	}
	return text
}

// AnalyzeProposal reviews an original/proposed content pair.
func (o *Oracle) AnalyzeProposal(ctx context.Context, original, proposed string) tuxdocs.Analysis {
	text := o.generate(ctx, BuildAnalysisPrompt(original, proposed), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary":      {Type: genai.TypeString},
				"riskLevel":    {Type: genai.TypeString, Enum: []string{"LOW", "MEDIUM", "HIGH"}},
				"qualityScore": {Type: genai.TypeInteger},
				"suggestions":  {Type: genai.TypeString},
			},
			Required: []string{"summary", "riskLevel", "qualityScore", "suggestions"},
		},
	})
	if text == "" {
		return tuxdocs.DefaultAnalysis()
	}

	var analysis tuxdocs.Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil || !analysis.Valid() {
		// A partially valid object is treated like a transport failure:
		// consumers always receive a complete record.
		return tuxdocs.DefaultAnalysis()
	}
	return analysis
}

// BuildSearchPrompt builds the semantic search prompt. Only catalog
// metadata is included, never document content.
func BuildSearchPrompt(query string, catalog []*tuxdocs.Document) string {
	type entry struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Keywords    string `json:"keywords"`
	}
	entries := make([]entry, 0, len(catalog))
	for _, doc := range catalog {
		entries = append(entries, entry{
			ID:          doc.ID,
			Title:       doc.Title,
			Description: doc.Description,
			Keywords:    doc.Category,
		})
	}
	blob, _ := json.Marshal(entries)

	var sb strings.Builder
	sb.WriteString("You are a search engine for Linux documentation.\n")
	fmt.Fprintf(&sb, "User Query: %q\n\n", query)
	sb.WriteString("Here is the document catalog:\n")
	sb.Write(blob)
	sb.WriteString("\n\nReturn a JSON array of the top 3 Document IDs that best answer the query.\n")
	sb.WriteString("If nothing is relevant, return an empty array.")
	return sb.String()
}

// BuildSummarizePrompt builds the executive-brief prompt.
func BuildSummarizePrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("You are the Editor-in-Chief of \"Linux Pro Magazine\".\n")
	sb.WriteString("Write a featured \"Executive Brief\" sidebar for this documentation.\n\n")
	sb.WriteString("Output strictly in Markdown.\n\n")
	sb.WriteString("Structure:\n")
	sb.WriteString("### The Hook\n")
	sb.WriteString("(One exciting sentence explaining why this matters today)\n\n")
	sb.WriteString("### Core Commands\n")
	sb.WriteString("(3 bullet points with command examples if applicable)\n\n")
	sb.WriteString("### Admin's Edge\n")
	sb.WriteString("(A specific security tip, performance hack, or modern alternative recommendation)\n\n")
	sb.WriteString("Document:\n")
	sb.WriteString(content)
	return sb.String()
}

// BuildWalkthroughPrompt builds the interactive-lab prompt.
func BuildWalkthroughPrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("You are a Technical Instructor.\n")
	sb.WriteString("Analyze the following documentation and convert it into a linear, step-by-step interactive lab.\n\n")
	sb.WriteString("Extract clean commands, provide clear explanations for beginners, and include a verification step to check if the command worked.\n\n")
	sb.WriteString("Output JSON Array.\n\n")
	sb.WriteString("Document:\n")
	sb.WriteString(content)
	return sb.String()
}

// BuildModernizePrompt builds the legacy-modernizer prompt.
func BuildModernizePrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("You are a Senior Technical Writer at a major Linux Enterprise.\n")
	sb.WriteString("Your task is to REWRITE this document using MODERN STANDARDS (iproute2, nftables, systemd).\n\n")
	sb.WriteString("CRITICAL: You must ENHANCE the structure to be a perfect \"How-To\":\n")
	sb.WriteString("1. **Modernization Note**: A brief blockquote explaining what changed.\n")
	sb.WriteString("2. **Prerequisites**: What is needed before starting?\n")
	sb.WriteString("3. **Step-by-Step Implementation**: Clear, numbered steps with code blocks.\n")
	sb.WriteString("4. **Verification**: Explicit commands to prove it works.\n")
	sb.WriteString("5. **Troubleshooting** (Optional): Common pitfalls.\n\n")
	sb.WriteString("Output strict Markdown.\n\n")
	sb.WriteString("Original Document:\n")
	sb.WriteString(content)
	return sb.String()
}

// BuildAnalysisPrompt builds the proposal-review prompt. Each side is
// truncated to a bounded prefix.
func BuildAnalysisPrompt(original, proposed string) string {
	var sb strings.Builder
	sb.WriteString("You are a Documentation Maintainer Bot.\n")
	sb.WriteString("Compare the Original and Proposed documentation.\n\n")
	sb.WriteString("Original:\n")
	sb.WriteString(truncate(original, analysisPrefixLimit))
	sb.WriteString("\n\nProposed:\n")
	sb.WriteString(truncate(proposed, analysisPrefixLimit))
	sb.WriteString("\n\nOutput JSON with:\n")
	sb.WriteString("- summary: One sentence summarizing changes.\n")
	sb.WriteString("- riskLevel: LOW, MEDIUM, or HIGH (is it malicious? distinct incorrect commands?)\n")
	sb.WriteString("- qualityScore: 1-10 integer.\n")
	sb.WriteString("- suggestions: Short constructive feedback.")
	return sb.String()
}

// truncate returns at most limit bytes of s, marking the cut. The cut
// backs off to a rune boundary so the prompt stays valid UTF-8.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + "..."
}
