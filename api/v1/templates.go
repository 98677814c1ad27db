package v1

import (
	"strings"
	"time"

	"github.com/cbroglie/mustache"
	"github.com/goodsign/monday"
)

const timeLayout = "Monday 2 January 2006 15:04"

var locales = map[string]monday.Locale{
	"en": monday.LocaleEnUS,
	"nl": monday.LocaleNlNL,
	"de": monday.LocaleDeDE,
	"fr": monday.LocaleFrFR,
	"fi": monday.LocaleFiFI,
}

// formatTime formats t in the language of the signing pages, falling back to English.
func formatTime(t time.Time, language string) string {
	locale, ok := locales[strings.ToLower(language)]
	if !ok {
		locale = monday.LocaleEnUS
	}
	return monday.Format(t, timeLayout, locale)
}

// https://eideasy-widget.docs.eideasy.com/guide/#minimal
const widgetTemplate = `<!DOCTYPE html>
<html lang="{{language}}">
<head>
    <title>Sign {{filename}}</title>
    <meta charset="utf-8">
</head>
<body>
    <script src="https://cdn.jsdelivr.net/npm/@eid-easy/eideasy-widget@2.11.1/dist/full/eideasy-widget.umd.min.js"
            integrity="sha256-cDmdyVFN9jvj0dG45ZgSbZ/d8WAhaA4TkmtJRj+ExAQ="
            crossorigin="anonymous"
    ></script>
    <div style="max-width: 1000px; margin: auto;">
        <h1>Sign {{filename}}</h1>
        <p>Requested on {{created}}</p>
        <div id="widgetHolder" class="widgetHolder"></div>
        <p><a href="{{signingUrl}}">Open the signing page of eID Easy instead</a></p>
    </div>
    <script type="text/javascript">
const widgetHolder = document.getElementById('widgetHolder');
const eidEasyWidget = document.createElement('eideasy-widget');

const settings = {
  clientId: '{{clientId}}',
  docId: '{{docId}}',
  language: '{{language}}',
  sandbox: {{sandbox}},
  redirectUri: '{{{redirectUri}}}',
  enabledMethods: {
    signature: 'all'
  },
  selectedMethod: null,
  enabledCountries: 'all',
  onSuccess: function (data) {
    if (data.data.status === 'OK') {
      window.location.replace('{{{redirectUri}}}');
    } else {
      alert('Error while signing document');
    }
  },
  onFail: function (error) {
    console.log(error);
  },
}

Object.keys(settings).forEach(key => {
  eidEasyWidget[key] = settings[key];
});

widgetHolder.appendChild(eidEasyWidget);
    </script>
</body>
</html>
`

const resultTemplate = `<!DOCTYPE html>
<html lang="{{language}}">
<head>
    <title>{{filename}}</title>
    <meta charset="utf-8">
</head>
<body>
    <div style="max-width: 1000px; margin: auto;">
        <h1>{{filename}}</h1>
        {{#signed}}<p>The document was successfully signed on {{signedAt}}. You can close this page.</p>{{/signed}}
        {{#pending}}<p>The signature is not available yet. <a href="">Reload</a> this page to check again.</p>{{/pending}}
        {{#failed}}<p>Signing failed: {{reason}}</p>{{/failed}}
    </div>
</body>
</html>
`

func renderWidget(vars map[string]interface{}) (string, error) {
	return mustache.Render(widgetTemplate, vars)
}

func renderResult(vars map[string]interface{}) (string, error) {
	return mustache.Render(resultTemplate, vars)
}
