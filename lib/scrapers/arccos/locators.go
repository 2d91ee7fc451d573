package arccos

import "golfsync-backend/lib/browser"

const DefaultBaseURL = "https://dashboard.arccosgolf.com"

var (
	emailField = []browser.Locator{
		"input[type=email]",
		"#email",
	}
	passwordField = []browser.Locator{
		"input[type=password]",
		"#password",
		"input[name=password]",
	}
	submitButton = []browser.Locator{
		"button[type=submit]",
		"button.login-button",
		`button:has-text("Sign In")`,
		`button:has-text("Log In")`,
		"input[type=submit]",
	}

	dashboardMarkers = []browser.Locator{
		"div[class*='dashboard']",
		"div[class*='home']",
		"div[class*='user-profile']",
		"div[class*='rounds']",
		`a:has-text("Dashboard")`,
		`a:has-text("Rounds")`,
	}
	errorBanners = []browser.Locator{
		".error-message",
		".alert-danger",
		"div[class*='error']",
	}

	roundsContainer = []browser.Locator{
		".rounds-list",
		".rounds-container",
	}
	roundItems = []browser.Locator{
		".round-card",
		".round-item",
		".round-container",
		".round-entry",
		"div[class*='round'][data-id]",
		"article[class*='round']",
	}
	roundDateFields = []browser.Locator{
		".round-date",
		"span[class*='date']",
		"time",
	}
	roundCourseFields = []browser.Locator{
		".course-name",
		".round-course",
		"h3",
		".round-title",
	}

	detailContainer = []browser.Locator{".round-details"}

	holeCards = []browser.Locator{".hole-card"}
	shotItems = []browser.Locator{".shot-item"}
	closeCard = []browser.Locator{"button[class*='close-button']"}
	statsTab  = []browser.Locator{"a[class*='stats-tab']"}

	holeNumberFields = []browser.Locator{".hole-number", "[class*='hole-number']"}
	holeParFields    = []browser.Locator{".hole-par", "[class*='par']"}
	holeScoreFields  = []browser.Locator{".hole-score", "[class*='score']"}
	holeYardsFields  = []browser.Locator{".hole-distance", "[class*='distance']"}
	holePuttsFields  = []browser.Locator{".hole-putts", "[class*='putts']"}

	shotClubFields = []browser.Locator{".shot-club", "[class*='club']"}
	shotDistFields = []browser.Locator{".shot-distance", "[class*='distance']"}
)

var roundIDAttrs = []string{"data-round-id", "data-id", "id"}

// goquery selectors for the snapshot side of the detail page
var (
	courseNameFields = []string{
		"h1[class*='course-name']",
		"h1",
	}
	detailDateFields = []string{
		".round-date",
		"span[class*='date']",
		"time",
	}
	locationFields = []string{
		".course-location",
		"span[class*='location']",
	}

	totalScoreFields = []string{".total-score", "[class*='total-score']"}
	totalParFields   = []string{".total-par", "[class*='total-par']"}
	frontNineFields  = []string{".front-nine-score", "[class*='front-nine']"}
	backNineFields   = []string{".back-nine-score", "[class*='back-nine']"}

	statsFairwaysFields = []string{"[class*='fairways']"}
	statsGirFields      = []string{"[class*='gir']", "[class*='greens']"}
	statsPuttsFields    = []string{"[class*='putts']"}
	statsDriveFields    = []string{"[class*='avg-drive']", "[class*='driving']"}
)
