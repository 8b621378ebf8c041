package main

import "github.com/smallsizeleague/sslmcp"

// DefaultSitemapURL is the league website's page sitemap.
const DefaultSitemapURL = "https://ssl.robocup.org/page-sitemap.xml"

// WebsiteSeeds are always indexed as website pages, merged ahead of the
// sitemap-discovered URLs.
var WebsiteSeeds = []string{
	"https://ssl.robocup.org/rules/",
	"https://ssl.robocup.org/tournament-rules/",
	"https://ssl.robocup.org/technical-overview-of-the-small-size-league/",
	"https://ssl.robocup.org/tournament-organization/",
	"https://ssl.robocup.org/divisions/",
	"https://ssl.robocup.org/open-source-contributions/",
	"https://ssl.robocup.org/history-of-open-source-submissions/",
	"https://ssl.robocup.org/scientific-publications/",
	"https://ssl.robocup.org/team-description-papers/",
	"https://ssl.robocup.org/history-of-technical-challenges/",
	"https://ssl.robocup.org/match-statistics/",
	"https://ssl.robocup.org/contact/",
}

// RulesURLs are the official rule and goal documents, indexed with full
// reliability.
var RulesURLs = []string{
	"https://robocup-ssl.github.io/ssl-rules/sslrules.html",
	"https://robocup-ssl.github.io/ssl-goals/sslgoals.html",
}

// RepositoryURLs list the league's open source repositories.
var RepositoryURLs = []string{
	"https://github.com/orgs/RoboCup-SSL/repositories",
}

// URLBlacklist drops pages that churn every season and add noise to the
// index (committee rosters, qualification forms, team lists, results).
var URLBlacklist = []string{
	"comittee",
	"comittees",
	"qualification",
	"teams",
	"results",
}

// Artifact file locations, relative to the data directory.
const (
	urlsFile       = "processed_urls.txt"
	websiteFile    = "full_website.txt"
	rulesFile      = "full_rules.txt"
	repositoryFile = "full_repository.txt"
	databaseFile   = "sslmcp.db"
)

func defaultFilter() *sslmcp.URLFilter {
	return &sslmcp.URLFilter{Substrings: URLBlacklist}
}
