// ABOUTME: Static source registries and domain classification
// ABOUTME: Substring containment against trusted and fact-checker domain lists

package verify

import (
	"net/url"
	"strings"

	"newsverify-api/core/domain"
)

// trustedDomains is the registry of generally reliable news outlets.
// Configuration data, not logic: add entries here to extend coverage.
// Matching is by substring containment, which is deliberately permissive
// ("notbbc.com" matches "bbc.com" lookalikes are accepted); see classify.
var trustedDomains = []string{
	"bbc.com",
	"bbc.co.uk",
	"reuters.com",
	"apnews.com",
	"cnn.com",
	"nytimes.com",
	"washingtonpost.com",
	"theguardian.com",
	"npr.org",
	"aljazeera.com",
	"economist.com",
	"ft.com",
	"wsj.com",
	"bloomberg.com",
	"cnbc.com",
	"forbes.com",
	"abcnews.go.com",
	"nbcnews.com",
	"cbsnews.com",
	"foxnews.com",
	"usatoday.com",
	"latimes.com",
	"politico.com",
	"axios.com",
	"theatlantic.com",
	"newyorker.com",
	"time.com",
	"vox.com",
	"propublica.org",
	"pbs.org",
	"thehindu.com",
	"indianexpress.com",
	"timesofindia.indiatimes.com",
	"hindustantimes.com",
	"ndtv.com",
	"dw.com",
	"france24.com",
	"lemonde.fr",
	"spiegel.de",
	"euronews.com",
	"abc.net.au",
	"smh.com.au",
	"cbc.ca",
	"theglobeandmail.com",
	"straitstimes.com",
	"scmp.com",
	"japantimes.co.jp",
	"nature.com",
	"science.org",
	"scientificamerican.com",
	"nationalgeographic.com",
	"nasa.gov",
	"who.int",
	"un.org",
	"news.sky.com",
}

// factCheckDomains is the registry of dedicated fact-checking publications.
// A fact-checker match outranks a trusted match because these outlets exist
// to confirm or debunk claims.
var factCheckDomains = []string{
	"snopes.com",
	"politifact.com",
	"factcheck.org",
	"fullfact.org",
	"factcheck.afp.com",
	"leadstories.com",
	"altnews.in",
	"boomlive.in",
}

// hostOf extracts the lowercased host (netloc) from a result link.
// Unparseable links yield an empty host, which classifies as unclassified.
func hostOf(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// classify matches a host against the registries by substring containment and
// returns the classification plus the registry entry that matched. The
// fact-checker list is checked first so that a host matching both lists takes
// the higher weighting.
func classify(host string) (domain.SourceClass, string) {
	if host == "" {
		return domain.SourceUnclassified, ""
	}
	for _, entry := range factCheckDomains {
		if strings.Contains(host, entry) {
			return domain.SourceFactChecker, entry
		}
	}
	for _, entry := range trustedDomains {
		if strings.Contains(host, entry) {
			return domain.SourceTrusted, entry
		}
	}
	return domain.SourceUnclassified, ""
}
