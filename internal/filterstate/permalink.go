package filterstate

import (
	"net/url"
	"strings"

	"flixhub/pkg/models"
)

// Permalink is the static page URL of a work: <origin>/works/<id>.html.
func Permalink(origin, workID string) string {
	return strings.TrimRight(origin, "/") + "/works/" + url.PathEscape(workID) + ".html"
}

// DeepLink is the in-app link to a work under the current filters. The
// special category and every other non-default dimension are kept.
func (c *Codec) DeepLink(origin string, st models.FilterState, workID string) string {
	return strings.TrimRight(origin, "/") + "/?" + c.EncodeWork(st, workID)
}

// WorkIDFromPage strips the .html suffix of a permalink path segment.
func WorkIDFromPage(segment string) (string, bool) {
	id, ok := strings.CutSuffix(segment, ".html")
	return id, ok && id != ""
}
