package knowledge

import "HelpdeskGolang/internal/entity"

// SeedArticles is the starter knowledge base for a fresh install.
func SeedArticles() []entity.KnowledgeArticle {
	return []entity.KnowledgeArticle{
		{
			Title:    "How to Reset Your Password",
			Category: string(entity.CategoryPasswordReset),
			Keywords: []string{"password", "reset", "forgot", "login"},
			Problem:  "I forgot my password and cannot log in",
			Solution: "You can reset your password through the self-service portal",
			Steps: []string{
				"Go to the login page",
				"Click on \"Forgot Password\"",
				"Enter your email address",
				"Check your email for reset link",
				"Click the link and create a new password",
			},
			Views:       245,
			Helpful:     189,
			NotHelpful:  12,
			IsPublished: true,
		},
		{
			Title:    "VPN Connection Issues",
			Category: string(entity.CategoryVPNIssues),
			Keywords: []string{"vpn", "connection", "remote", "access"},
			Problem:  "Cannot connect to VPN from home",
			Solution: "Try these troubleshooting steps to resolve VPN connection issues",
			Steps: []string{
				"Verify your internet connection is stable",
				"Restart the VPN client application",
				"Check if your VPN credentials are correct",
				"Try connecting to a different VPN server",
				"If issue persists, contact IT support",
			},
			Views:       178,
			Helpful:     142,
			NotHelpful:  8,
			IsPublished: true,
		},
		{
			Title:    "Request Software Installation",
			Category: string(entity.CategorySoftwareInst),
			Keywords: []string{"software", "install", "application", "access"},
			Problem:  "Need to install new software for work",
			Solution: "Submit a software installation request through the portal",
			Steps: []string{
				"Create a ticket specifying the software name",
				"Provide business justification",
				"Manager approval may be required",
				"IT will install the software remotely",
				"You will receive confirmation once complete",
			},
			Views:       134,
			Helpful:     98,
			NotHelpful:  5,
			IsPublished: true,
		},
		{
			Title:    "Printer Not Working",
			Category: string(entity.CategoryHardwareIssue),
			Keywords: []string{"printer", "print", "hardware", "not working", "printing"},
			Problem:  "Printer is not responding or printing",
			Solution: "Follow these steps to troubleshoot printer issues",
			Steps: []string{
				"Check if printer is powered on",
				"Verify printer is connected to network",
				"Check for paper jams",
				"Restart the printer",
				"Remove and re-add printer in Windows settings",
			},
			Views:       89,
			Helpful:     67,
			NotHelpful:  4,
			IsPublished: true,
		},
		{
			Title:    "Laptop Not Starting or Booting",
			Category: string(entity.CategoryHardwareIssue),
			Keywords: []string{"laptop", "not starting", "wont start", "boot", "power", "startup", "not booting", "wont boot"},
			Problem:  "Laptop will not power on or start up properly",
			Solution: "Follow these troubleshooting steps to diagnose and fix laptop startup issues",
			Steps: []string{
				"Check if the power adapter is properly connected",
				"Try a different power outlet",
				"Remove the battery and hold power button for 30 seconds, then reconnect",
				"Check for any indicator lights on the laptop",
				"Try connecting to an external monitor to rule out display issues",
				"If still not working, contact hardware support for repair",
			},
			Views:       156,
			Helpful:     124,
			NotHelpful:  8,
			IsPublished: true,
		},
		{
			Title:    "Slow Network Connection",
			Category: string(entity.CategoryNetworkIssues),
			Keywords: []string{"network", "slow", "internet", "connection"},
			Problem:  "Internet is very slow or keeps disconnecting",
			Solution: "Try these steps to improve network performance",
			Steps: []string{
				"Run a speed test to measure connection",
				"Restart your router/modem",
				"Connect via ethernet cable if possible",
				"Close bandwidth-heavy applications",
				"Contact network team if issue persists",
			},
			Views:       156,
			Helpful:     112,
			NotHelpful:  7,
			IsPublished: true,
		},
	}
}
