package service

// freeProviders are consumer mailbox domains
var freeProviders = map[string]struct{}{
	"gmail.com":   {},
	"yahoo.com":   {},
	"outlook.com": {},
	"hotmail.com": {},
	"live.com":    {},
	"aol.com":     {},
	"icloud.com":  {},
	"mail.com":    {},
}

// roleAccounts are local parts that address a function, not a person.
// Matched exactly or as a "role+tag" prefix
var roleAccounts = map[string]struct{}{
	"admin":      {},
	"info":       {},
	"support":    {},
	"contact":    {},
	"noreply":    {},
	"no-reply":   {},
	"postmaster": {},
	"webmaster":  {},
	"sales":      {},
	"marketing":  {},
	"billing":    {},
	"help":       {},
	"service":    {},
}

// commonTypos maps frequent misspellings to the intended domain
var commonTypos = map[string]string{
	"gmai.com":   "gmail.com",
	"gmial.com":  "gmail.com",
	"gmil.com":   "gmail.com",
	"yahooo.com": "yahoo.com",
	"yaho.com":   "yahoo.com",
	"outlok.com": "outlook.com",
}
