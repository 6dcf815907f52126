package analyzer

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
)

// MethodSummary extracts a one-line summary for a method from its JSDoc:
// an explicit @summary tag wins, otherwise the first line of the comment
// body. Returns "" when the method carries no usable JSDoc.
func MethodSummary(node *ast.Node) string {
	if node == nil {
		return ""
	}
	jsdocs := node.JSDoc(nil)
	if len(jsdocs) == 0 {
		return ""
	}
	jsdoc := jsdocs[len(jsdocs)-1].AsJSDoc()

	body := ""
	if jsdoc.Comment != nil {
		body = extractNodeListText(jsdoc.Comment)
	}

	if jsdoc.Tags != nil {
		for _, tagNode := range jsdoc.Tags.Nodes {
			tagName, comment := jsdocTagInfo(tagNode)
			if strings.EqualFold(tagName, "summary") {
				if s := strings.TrimSpace(comment); s != "" {
					return s
				}
			}
		}
	}

	body = strings.TrimSpace(body)
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		body = strings.TrimSpace(body[:idx])
	}
	return body
}

// jsdocTagInfo extracts the tag name and comment text from a custom JSDoc
// tag node. Known-tag kinds are not needed here; only KindJSDocTag carries
// the @summary annotation.
func jsdocTagInfo(tagNode *ast.Node) (tagName string, comment string) {
	if tagNode == nil || tagNode.Kind != ast.KindJSDocTag {
		return "", ""
	}
	unknownTag := tagNode.AsJSDocUnknownTag()
	if unknownTag == nil || unknownTag.TagName == nil {
		return "", ""
	}
	tagName = unknownTag.TagName.Text()
	if unknownTag.Comment != nil {
		comment = extractNodeListText(unknownTag.Comment)
	}
	return tagName, comment
}

// extractNodeListText concatenates the text parts of a JSDoc comment node
// list, including inline {@link} nodes.
func extractNodeListText(nodeList *ast.NodeList) string {
	if nodeList == nil {
		return ""
	}
	var parts []string
	for _, commentNode := range nodeList.Nodes {
		switch commentNode.Kind {
		case ast.KindJSDocText:
			parts = append(parts, commentNode.Text())
		case ast.KindJSDocLink, ast.KindJSDocLinkCode, ast.KindJSDocLinkPlain:
			parts = append(parts, commentNode.Text())
		}
	}
	return strings.Join(parts, "")
}
