package triage

import "HelpdeskGolang/internal/entity"

// KeywordTable holds the three weighted keyword tiers of one category.
// Phrases are multi-word substrings (weight 5), strong terms are
// single decisive words (weight 3), weak terms are contextual hints
// (weight 1).
type KeywordTable struct {
	Phrases []string
	Strong  []string
	Weak    []string
}

// PriorityTable holds the weighted terms of one priority tier.
// Strong hits count double.
type PriorityTable struct {
	Strong []string
	Normal []string
}

// Config carries the full training corpus and scoring tables. It is
// built once at startup and injected into the classifier service, so
// tests can substitute synthetic corpora.
type Config struct {
	Corpus     []entity.TrainingExample
	Keywords   map[entity.Category]KeywordTable
	Priorities map[entity.Priority]PriorityTable
	Teams      map[entity.Category]string
}

const DefaultTeam = "Support"

func DefaultConfig() Config {
	return Config{
		Corpus:     defaultCorpus(),
		Keywords:   defaultKeywordTables(),
		Priorities: defaultPriorityTables(),
		Teams: map[entity.Category]string{
			entity.CategoryPasswordReset: "IT Support",
			entity.CategoryVPNIssues:     "Network Team",
			entity.CategorySoftwareInst:  "IT Support",
			entity.CategoryHardwareIssue: "Hardware Team",
			entity.CategoryNetworkIssues: "Network Team",
			entity.CategoryEmailIssues:   "IT Support",
			entity.CategoryOther:         DefaultTeam,
		},
	}
}

func defaultKeywordTables() map[entity.Category]KeywordTable {
	return map[entity.Category]KeywordTable{
		entity.CategoryPasswordReset: {
			Phrases: []string{
				"forgot my password", "reset my password", "password reset",
				"cant login", "cannot login", "cant log in", "locked out",
				"account locked", "change my password",
			},
			Strong: []string{"password", "login", "credentials", "authentication"},
			Weak:   []string{"reset", "forgot", "account", "locked", "expired"},
		},
		entity.CategoryVPNIssues: {
			Phrases: []string{
				"virtual private network", "vpn connection", "cant connect to vpn",
				"vpn error", "vpn timeout", "remote access", "connection timeout",
			},
			Strong: []string{"vpn", "tunnel"},
			Weak:   []string{"remote", "connect", "timeout", "disconnect", "home"},
		},
		entity.CategorySoftwareInst: {
			Phrases: []string{
				"install software", "software installation", "need access to",
				"app not working", "cant open", "license key", "new software",
			},
			Strong: []string{"software", "install", "application", "license"},
			Weak:   []string{"app", "permission", "tool", "update", "download", "version"},
		},
		entity.CategoryHardwareIssue: {
			Phrases: []string{
				"wont start", "not starting", "wont boot", "not booting",
				"wont turn on", "screen flickering", "blue screen",
				"making noise", "paper jam",
			},
			Strong: []string{
				"laptop", "hardware", "printer", "monitor", "keyboard",
				"mouse", "battery", "screen",
			},
			Weak: []string{
				"computer", "device", "broken", "boot", "power", "startup",
				"charging", "overheating", "equipment", "display",
			},
		},
		entity.CategoryNetworkIssues: {
			Phrases: []string{
				"no internet", "network down", "cant connect to wifi",
				"internet is slow", "keeps disconnecting", "slow connection",
			},
			Strong: []string{"network", "wifi", "internet", "ethernet"},
			Weak:   []string{"slow", "connection", "connectivity", "router", "offline"},
		},
		entity.CategoryEmailIssues: {
			Phrases: []string{
				"cant send email", "cant receive email", "not syncing",
				"email error", "mailbox full", "emails not syncing",
			},
			Strong: []string{"email", "outlook", "mailbox", "inbox", "smtp"},
			Weak:   []string{"mail", "send", "receive", "sync", "spam", "attachment"},
		},
	}
}

func defaultPriorityTables() map[entity.Priority]PriorityTable {
	return map[entity.Priority]PriorityTable{
		entity.PriorityUrgent: {
			Strong: []string{"urgent", "critical", "emergency"},
			Normal: []string{"asap", "immediately", "down", "cant work", "production"},
		},
		entity.PriorityHigh: {
			Strong: []string{"blocking", "broken"},
			Normal: []string{"important", "soon", "cant access", "deadline"},
		},
		entity.PriorityMedium: {
			Strong: nil,
			Normal: []string{"need", "help", "issue", "problem", "error"},
		},
		entity.PriorityLow: {
			Strong: nil,
			Normal: []string{"question", "how to", "request", "information", "whenever"},
		},
	}
}

func defaultCorpus() []entity.TrainingExample {
	examples := map[entity.Category][]string{
		entity.CategoryPasswordReset: {
			"I forgot my password and cannot log in to my account",
			"need a password reset for my workstation login",
			"my account is locked out after too many failed attempts",
			"cant login to the portal my credentials are not accepted",
			"how do I change my password before it expires",
			"password expired and I am unable to sign in",
			"locked out of my account please reset my credentials",
			"authentication fails every time I try to log in",
			"reset link for my password never arrived",
			"I keep getting invalid password errors on login",
			"my login credentials stopped working this morning",
			"forgot the password for my email account and need it reset",
		},
		entity.CategoryVPNIssues: {
			"cannot connect to vpn from home office",
			"vpn connection keeps timing out when working remotely",
			"the vpn client shows a tunnel error after the update",
			"remote access through vpn fails with connection refused",
			"vpn disconnects every few minutes while I am on calls",
			"unable to reach internal systems over the vpn tunnel",
			"vpn error 812 when connecting to the corporate network",
			"my virtual private network session drops constantly",
			"cant connect to vpn after changing my password",
			"vpn authentication succeeds but no traffic goes through",
			"need help configuring the vpn client on my new laptop",
			"remote connection to the office network times out",
		},
		entity.CategorySoftwareInst: {
			"need adobe photoshop installed for design work",
			"cannot install the new software update on my machine",
			"requesting a license for microsoft project",
			"the application wont open after the latest install",
			"need access to the accounting tool for month end",
			"software installation fails with a permission error",
			"please install the development tools on my workstation",
			"app not working since the version upgrade",
			"need admin permission to install a browser extension",
			"license key for the design software has expired",
			"cant open the reporting application after reinstall",
			"requesting installation of microsoft teams on my laptop",
		},
		entity.CategoryHardwareIssue: {
			"my laptop wont start or boot this morning",
			"the printer is broken and not responding",
			"laptop screen started flickering and is getting worse",
			"computer wont turn on even when plugged in",
			"keyboard keys are not working on my workstation",
			"monitor display shows no signal after startup",
			"laptop battery drains fast and stops charging",
			"my computer is overheating and shutting down",
			"the printer has a paper jam and wont print",
			"mouse stopped working and the device is not detected",
			"laptop making a strange noise and running slow",
			"blue screen appears every time the computer boots",
		},
		entity.CategoryNetworkIssues: {
			"internet is very slow in the office today",
			"cannot connect to the office wifi network",
			"network down on the third floor since morning",
			"no internet connection on my desk ethernet port",
			"wifi keeps disconnecting every few minutes",
			"network connectivity drops during video calls",
			"the whole team has no internet access right now",
			"slow connection when accessing shared network drives",
			"router in the meeting room is offline",
			"ethernet cable connected but no network access",
			"internet keeps dropping while uploading files",
			"wifi signal is weak and pages load very slowly",
		},
		entity.CategoryEmailIssues: {
			"emails are not syncing on my phone",
			"cant send email from outlook since this morning",
			"my mailbox is full and rejecting new messages",
			"cannot receive external emails in my inbox",
			"outlook shows a connection error to the mail server",
			"email stuck in the outbox and never delivered",
			"spam filter is blocking legitimate messages",
			"smtp error when sending attachments over email",
			"inbox not updating with new mail on the desktop client",
			"email signature disappears when replying",
			"meeting invites are not arriving in my inbox",
			"mail sync between phone and outlook stopped working",
		},
	}

	var corpus []entity.TrainingExample
	for _, category := range entity.Categories() {
		for _, text := range examples[category] {
			corpus = append(corpus, entity.TrainingExample{
				Text:     text,
				Category: category,
			})
		}
	}

	return corpus
}
