package merge

import (
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/hostsmith/hostsmith/src/internal/utils"
)

// headerTemplate is the generated banner placed at the top of the artifact.
const headerTemplate = `# This hosts file is a merged collection of hosts from reputable sources,
# with a dash of crowd sourcing via Github
#
# Date: {{date}}
{{extensions}}# Number of unique domains: {{count}}
#
# Fetch the latest version of this file: https://raw.githubusercontent.com/hostsmith/hostsmith/master/{{location}}hosts
# Project home page: https://github.com/hostsmith/hostsmith
#
# ===============================================================

`

// staticEntries are the fixed localhost records emitted unless the run is
// configured to skip them.
var staticEntries = []string{
	"127.0.0.1 localhost\n",
	"127.0.0.1 localhost.localdomain\n",
	"127.0.0.1 local\n",
	"255.255.255.255 broadcasthost\n",
	"::1 localhost\n",
	"fe80::1%lo0 localhost\n",
	"0.0.0.0 0.0.0.0\n",
}

var headerTmpl = fasttemplate.New(headerTemplate, "{{", "}}")

// HeaderMeta carries everything the header/footer writer needs to render the
// final artifact around the merged body.
type HeaderMeta struct {
	// Date is the generation timestamp stamped into the banner.
	Date time.Time
	// Extensions lists the extension names merged into this artifact.
	Extensions []string
	// UniqueCount is the number of unique domains in the body.
	UniqueCount int
	// OutputSubfolder appears in the fetch URL of the banner.
	OutputSubfolder string
	// SkipStaticHosts omits the static localhost entries.
	SkipStaticHosts bool
	// IsLinuxHost adds the machine-hostname records Linux resolvers expect.
	IsLinuxHost bool
	// LocalHostname is the machine hostname for the Linux records.
	LocalHostname string
	// Preamble is optional text copied verbatim between header and body.
	Preamble string
}

// Render prepends the generated banner and static entries to the merged body
// and returns the full artifact as a sequence of output chunks.
func (meta HeaderMeta) Render(body []string) []string {
	out := make([]string, 0, len(body)+16)
	out = append(out, meta.banner())

	if !meta.SkipStaticHosts {
		out = append(out, staticEntries...)
		if meta.IsLinuxHost {
			out = append(out, "127.0.1.1 "+meta.LocalHostname+"\n")
			out = append(out, "127.0.0.53 "+meta.LocalHostname+"\n")
		}
		out = append(out, "\n")
	}

	if meta.Preamble != "" {
		out = append(out, meta.Preamble)
	}

	out = append(out, body...)
	return out
}

// banner renders the comment block at the very top of the artifact.
func (meta HeaderMeta) banner() string {
	extensionsLine := ""
	if len(meta.Extensions) > 0 {
		extensionsLine = "# Extensions added to this file: " + strings.Join(meta.Extensions, ", ") + "\n"
	}

	location := ""
	if meta.OutputSubfolder != "" {
		location = strings.TrimSuffix(meta.OutputSubfolder, "/") + "/"
	}

	return headerTmpl.ExecuteString(map[string]interface{}{
		"date":       meta.Date.UTC().Format("January 02 2006"),
		"extensions": extensionsLine,
		"count":      utils.FormatThousands(meta.UniqueCount),
		"location":   location,
	})
}
