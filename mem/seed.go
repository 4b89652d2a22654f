package mem

import (
	"embed"
	"strings"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Document bodies live alongside the metadata below, one markdown file
// per catalog entry, keyed by document ID.
//
//go:embed docs/*.md
var docFS embed.FS

// Seed returns the sample document catalog: classic TLDP-era HOWTOs.
// All content is intentionally legacy so the modernization features
// have something to work on.
func Seed() []*tuxdocs.Document {
	meta := []*tuxdocs.Document{
		{
			ID:                "security-howto",
			Title:             "Security HOWTO",
			Category:          "Security",
			LastUpdated:       "2004-06-25",
			ObsolescenceScore: 95,
			ModernEquivalent:  "OpenSSH / Fail2Ban / UFW",
			Description:       "A general overview of security issues that face the administrator of Linux systems.",
			SourceURL:         "https://tldp.org/HOWTO/html_single/Security-HOWTO/",
		},
		{
			ID:                "apache-overview",
			Title:             "Apache Overview HOWTO",
			Category:          "Web Servers",
			LastUpdated:       "2002-10-14",
			ObsolescenceScore: 90,
			ModernEquivalent:  "Nginx / Caddy",
			Description:       "An overview of the Apache Web Server, the standard for serving web content.",
			SourceURL:         "https://tldp.org/HOWTO/html_single/Apache-Overview-HOWTO/",
		},
		{
			ID:                "cvs-rcs-howto",
			Title:             "CVS-RCS HOWTO",
			Category:          "DevOps",
			LastUpdated:       "2001-09-21",
			ObsolescenceScore: 99,
			ModernEquivalent:  "Git",
			Description:       "How to set up and use the Concurrent Versions System (CVS) and Revision Control System (RCS).",
			SourceURL:         "https://tldp.org/HOWTO/html_single/CVS-RCS-HOWTO/",
		},
		{
			ID:                "lvm-howto",
			Title:             "LVM HOWTO",
			Category:          "Storage",
			LastUpdated:       "2006-03-25",
			ObsolescenceScore: 85,
			ModernEquivalent:  "LVM2 (Standard)",
			Description:       "Learning how to compile, install, and use the Logical Volume Manager.",
			SourceURL:         "https://tldp.org/HOWTO/html_single/LVM-HOWTO/",
		},
		{
			ID:                "bash-prog-intro",
			Title:             "Bash-Prog-Intro HOWTO",
			Category:          "Automation",
			LastUpdated:       "2000-07-26",
			ObsolescenceScore: 92,
			ModernEquivalent:  "Modern Bash / Python / Go",
			Description:       "An introduction to shell programming with Bash (Legacy constructs).",
			SourceURL:         "https://tldp.org/HOWTO/html_single/Bash-Prog-Intro-HOWTO/",
		},
		{
			ID:                "firewall-howto",
			Title:             "Firewall HOWTO",
			Category:          "Network Security",
			LastUpdated:       "2004-03-08",
			ObsolescenceScore: 95,
			ModernEquivalent:  "nftables / ufw / firewalld",
			Description:       "A guide to setting up a firewall using iptables and netfilter.",
			SourceURL:         "https://tldp.org/HOWTO/html_single/Firewall-HOWTO/",
		},
		{
			ID:                "nfs-howto",
			Title:             "NFS HOWTO",
			Category:          "Networking",
			LastUpdated:       "2002-08-25",
			ObsolescenceScore: 88,
			ModernEquivalent:  "NFSv4 / Samba",
			Description:       "Setting up Network File System (NFS) servers and clients.",
			SourceURL:         "https://tldp.org/HOWTO/html_single/NFS-HOWTO/",
		},
		{
			ID:                "tar-backup",
			Title:             "Linux Backup Strategy (SAG)",
			Category:          "File Management",
			LastUpdated:       "2007-03-10",
			ObsolescenceScore: 85,
			ModernEquivalent:  "Restic / Borg / Kopia",
			Description:       "From the System Administrators Guide: Archiving with Tar.",
			SourceURL:         "https://tldp.org/LDP/sag/html/backups.html",
		},
		{
			ID:                "net-howto",
			Title:             "Net-HOWTO",
			Category:          "Networking",
			LastUpdated:       "2002-08-09",
			ObsolescenceScore: 99,
			ModernEquivalent:  "iproute2 (ip command)",
			Description:       "Detailed guide on configuring networking (Legacy).",
			SourceURL:         "https://tldp.org/HOWTO/html_single/Net-HOWTO/",
		},
		{
			ID:                "dns-howto",
			Title:             "DNS HOWTO",
			Category:          "System Administration",
			LastUpdated:       "2001-11-23",
			ObsolescenceScore: 95,
			ModernEquivalent:  "Bind9 / CoreDNS",
			Description:       "How to become a master of your domain using BIND 4/8.",
			SourceURL:         "https://tldp.org/HOWTO/html_single/DNS-HOWTO/",
		},
		{
			ID:                "quota-howto",
			Title:             "Quota HOWTO",
			Category:          "System Administration",
			LastUpdated:       "2003-08-14",
			ObsolescenceScore: 89,
			ModernEquivalent:  "XFS Quota / Ext4 Quota",
			Description:       "Enforcing disk usage limits on users.",
			SourceURL:         "https://tldp.org/HOWTO/html_single/Quota/",
		},
		{
			ID:                "virtualization-howto",
			Title:             "Virtualization HOWTO",
			Category:          "DevOps",
			LastUpdated:       "2006-08-23",
			ObsolescenceScore: 92,
			ModernEquivalent:  "Docker / KVM / Podman",
			Description:       "Discusses various virtualization technologies like VServer, Xen, and QEMU.",
			SourceURL:         "https://tldp.org/HOWTO/html_single/Virtualization-HOWTO/",
		},
	}

	for _, doc := range meta {
		body, err := docFS.ReadFile("docs/" + doc.ID + ".md")
		if err != nil {
			// A missing body is a packaging bug, not a runtime condition.
			panic("mem: missing seed content for " + doc.ID)
		}
		doc.Content = strings.TrimSpace(string(body)) + "\n"
	}
	return meta
}

// SeedProposal returns the sample pending proposal shipped with the
// moderation queue so the view is never empty on first run.
func SeedProposal() *tuxdocs.Proposal {
	return &tuxdocs.Proposal{
		DocID:           "security-howto",
		DocTitle:        "Security HOWTO",
		OriginalContent: "PermitRootLogin no",
		ProposedContent: "PermitRootLogin prohibit-password",
		Author:          "penguin_lover_99",
		Analysis: &tuxdocs.Analysis{
			Summary:      "Updates root login to allow keys but block passwords.",
			RiskLevel:    tuxdocs.RiskLow,
			QualityScore: 9,
			Suggestions:  "Good update for backup scenarios.",
		},
	}
}
