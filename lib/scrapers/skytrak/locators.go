package skytrak

import "golfsync-backend/lib/browser"

const DefaultBaseURL = "https://app.skytrakgolf.com"

var (
	usernameField = []browser.Locator{
		"#username",
		"input[name=username]",
		"#user",
		"input[type=text]",
		"input[type=email]",
		"#email",
	}
	passwordField = []browser.Locator{
		"#password",
		"input[type=password]",
		"input[name=password]",
	}
	submitButton = []browser.Locator{
		"button[type=submit]",
		".login-button",
		"#login-button",
		"input[type=submit]",
	}

	dashboardMarkers = []browser.Locator{
		"div[class*='dashboard']",
		"a[href*='sessions']",
		"a[href*='practice']",
		"a[href*='data']",
		".welcome",
	}
	errorBanners = []browser.Locator{
		".error-message",
		".alert-danger",
		"div[class*='error']",
	}

	sessionsContainer = []browser.Locator{
		".sessions-container",
		".session-list",
	}
	sessionItems = []browser.Locator{
		".session-item",
		".practice-session",
	}
	sessionDateFields = []browser.Locator{
		".session-date",
		"span[class*='date']",
		"time",
	}
	sessionNameFields = []browser.Locator{
		".session-name",
		".title",
		"h3",
	}

	detailContainer = []browser.Locator{".session-details"}
	dataTab         = []browser.Locator{"a[class*='data-tab']"}
)

var sessionIDAttrs = []string{"data-session-id", "id", "data-id"}

// goquery selectors for the detail snapshot
var (
	detailTitleFields = []string{
		"h1[class*='session-title']",
		"h1",
		"h2",
	}
	detailDateFields = []string{
		".session-date",
		"span[class*='date']",
		"time",
	}

	shotTableRows = []string{
		"table[class*='shots-table'] tr",
		"table[class*='shots'] tr",
	}
)

// fixed column order of the shot table
const shotTableColumns = 8
