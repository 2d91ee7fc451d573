package trackman

import "golfsync-backend/lib/browser"

const DefaultBaseURL = "https://mytrackman.com"

// Selector chains are ordered by how often each generation of the
// markup shows up in the wild. Markup drift gets fixed here, not in
// the flow code.
var (
	usernameField = []browser.Locator{"#username"}
	passwordField = []browser.Locator{"#password"}
	submitButton  = []browser.Locator{"button[type=submit]"}

	dashboardMarkers = []browser.Locator{
		"div[class*='dashboard']",
		"div[class*='home']",
	}
	errorBanners = []browser.Locator{
		".error-message",
		".alert-danger",
	}

	sessionsContainer = []browser.Locator{
		".sessions-container",
		".session-list",
	}
	sessionItems = []browser.Locator{
		".session-item",
		".session-card",
		".session-row",
		"tr[class*='session']",
	}
	sessionDateFields = []browser.Locator{
		".session-date",
		"span[class*='date']",
		"time",
	}
	sessionLabelFields = []browser.Locator{
		".session-name",
		".title",
		"h2",
		"h3",
		".session-title",
	}

	detailContainer = []browser.Locator{".session-details"}
)

var sessionIDAttrs = []string{"data-session-id", "id", "data-id"}

// goquery selectors for field extraction off the rendered detail page
var (
	detailTitleFields = []string{
		"h1.session-title",
		"h2.session-title",
		"div.session-title",
		"h1",
		"h2",
	}
	detailDateFields = []string{
		".session-date",
		"span[class*='date']",
		"time",
	}
	detailLocationFields = []string{
		".session-location",
		".location",
		"span[class*='location']",
	}

	shotRowSelectors = []string{
		"table[class*='shots-table'] tr[class*='shot-row']",
		"table[class*='shots'] tr",
		".shots-container .shot",
	}

	// per-row cells are keyed by class token
	clubCells        = []string{".club"}
	ballSpeedCells   = []string{".ball-speed"}
	clubSpeedCells   = []string{".club-speed"}
	smashCells       = []string{".smash-factor", ".smash"}
	launchAngleCells = []string{".launch-angle", ".launch"}
	spinRateCells    = []string{".spin-rate", ".spin"}
	carryCells       = []string{".carry", ".carry-distance"}
	totalCells       = []string{".total", ".total-distance"}
)
