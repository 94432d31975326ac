package decl

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Anomaly describes a declaration segment that was skipped while parsing.
type Anomaly struct {
	Offset  int    `json:"offset"`
	Message string `json:"message"`
}

// Parse reads a flat "name: value; ..." declaration list.
//
// Property names are lowercased and values are rebuilt from tokens with a
// single space after commas and around slashes, so "rgba(1,2,3,0.5)" and
// "rgba(1, 2, 3, 0.5)" parse to the same value. A later declaration of the same property
// overwrites the earlier value in place. Malformed segments, nested blocks
// and at-rules are skipped and reported as anomalies.
func Parse(text string) (Block, []Anomaly) {
	var (
		block     Block
		anomalies []Anomaly
		depth     int
	)

	parser := css.NewParser(parse.NewInput(strings.NewReader(text)), true)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if !parser.HasParseError() {
				return block, anomalies
			}
			anomalies = append(anomalies, Anomaly{Offset: parser.Offset(), Message: parser.Err().Error()})
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			if depth == 0 {
				anomalies = append(anomalies, Anomaly{Offset: parser.Offset(), Message: "unexpected block " + string(data)})
			}
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			if depth > 0 {
				depth--
			}
		case css.AtRuleGrammar:
			anomalies = append(anomalies, Anomaly{Offset: parser.Offset(), Message: "unexpected at-rule " + string(data)})
		case css.DeclarationGrammar:
			if depth > 0 {
				continue
			}
			value := joinValues(parser.Values())
			if value == "" {
				anomalies = append(anomalies, Anomaly{Offset: parser.Offset(), Message: "empty value for " + string(data)})
				continue
			}
			block = block.Set(string(data), value)
		case css.CustomPropertyGrammar:
			if depth > 0 {
				continue
			}
			var value string
			if vals := parser.Values(); len(vals) > 0 {
				value = strings.TrimSpace(string(vals[0].Data))
			}
			if value == "" {
				anomalies = append(anomalies, Anomaly{Offset: parser.Offset(), Message: "empty value for " + string(data)})
				continue
			}
			block = block.Set(string(data), value)
		}
	}
}

// joinValues rebuilds a declaration value from its tokens.
func joinValues(tokens []css.Token) string {
	tokens = trimImportant(tokens)

	var buf bytes.Buffer
	for _, t := range tokens {
		switch {
		case t.TokenType == css.CommaToken:
			buf.WriteString(", ")
		case t.TokenType == css.WhitespaceToken:
			buf.WriteByte(' ')
		case t.TokenType == css.DelimToken && len(t.Data) == 1 && t.Data[0] == '/':
			// The tokenizer drops whitespace around "/"; generated values
			// always space it ("span 1 / span 1").
			buf.WriteString(" / ")
		default:
			buf.Write(t.Data)
		}
	}
	return strings.TrimSpace(buf.String())
}

// trimImportant drops a trailing "!important".
func trimImportant(tokens []css.Token) []css.Token {
	n := len(tokens)
	if n >= 2 && tokens[n-1].TokenType == css.IdentToken &&
		strings.EqualFold(string(tokens[n-1].Data), "important") &&
		tokens[n-2].TokenType == css.DelimToken && string(tokens[n-2].Data) == "!" {
		return tokens[:n-2]
	}
	return tokens
}
