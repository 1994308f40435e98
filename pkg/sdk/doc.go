// Package tripdex is a Go client for the tripdex travel catalog API.
//
// Reads are anonymous; writes need an admin token obtained from Login:
//
//	c, _ := tripdex.New("http://localhost:8080")
//	res, _ := c.Search(ctx, "kerala")
//	for _, r := range res.Records {
//	    fmt.Println(r.Type, r.Name, r.Location)
//	}
//
//	s, _ := c.Login(ctx, "admin@example.com", "secret-password")
//	admin := c.WithToken(s.Token)
//	_, _ = admin.CreatePackage(ctx, tripdex.PackageInput{Title: "Goa Beach Bliss"})
//
// # Type-ahead suggestions
//
// Suggester keeps a single request in flight per input box. Every Update
// cancels the previous request, and a response that arrives after a newer
// Update is dropped instead of being shown:
//
//	sg := c.NewSuggester(5, func(u tripdex.SuggestUpdate) { render(u.Items) })
//	sg.Update(ctx, "ke")
//	sg.Update(ctx, "kerala") // the "ke" response is never rendered
package tripdex
