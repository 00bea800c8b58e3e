package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/loginkeeper/internal/client/models"
	"github.com/dmitrijs2005/loginkeeper/internal/client/session"
)

// Whoami prints the current login user as JSON.
func (a *App) Whoami(ctx context.Context) error {
	return writeJSON(a.out, a.holder.LoginUser())
}

// Fetch refreshes the login user from the backend and reports the outcome.
// A rejected or empty answer is not an error: the previous user is kept.
func (a *App) Fetch(ctx context.Context) error {
	res := a.holder.FetchLoginUser(ctx)

	switch res.Status {
	case session.FetchUpdated:
		fmt.Fprintf(a.out, "Logged in as %s\n", a.holder.LoginUser().UserName)
	case session.FetchRejected:
		fmt.Fprintf(a.out, "Backend refused (code %d: %s), keeping %s\n", res.Code, res.Message, a.holder.LoginUser().UserName)
	case session.FetchEmpty:
		fmt.Fprintf(a.out, "Backend returned no user, keeping %s\n", a.holder.LoginUser().UserName)
	case session.FetchFailed:
		fmt.Fprintf(a.out, "Fetch failed, keeping %s: %v\n", a.holder.LoginUser().UserName, res.Err)
	}
	return res.Err
}

// Set replaces the login user. raw is either a user name or a JSON record,
// taken verbatim from the rest of the command line.
func (a *App) Set(ctx context.Context, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		fmt.Fprintln(a.out, "Usage: set <name> | set {json}")
		return nil
	}

	user, err := parseUserArg(raw)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid user: %v\n", err)
		return err
	}

	if err := a.holder.SetLoginUser(ctx, user); err != nil {
		fmt.Fprintf(a.out, "User set but not saved: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Login user set to %s\n", user.UserName)
	return nil
}

func parseUserArg(raw string) (models.LoginUser, error) {
	if strings.HasPrefix(raw, "{") {
		var u models.LoginUser
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return models.LoginUser{}, err
		}
		return u, nil
	}
	return models.LoginUser{UserName: raw}, nil
}

// Logout resets to the default user and removes the stored copy.
func (a *App) Logout(ctx context.Context) error {
	if err := a.holder.ClearLoginUser(ctx); err != nil {
		fmt.Fprintf(a.out, "Logged out, but stored user could not be removed: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Ping checks backend health and updates the mode.
func (a *App) Ping(ctx context.Context) error {
	a.checkOnline(ctx)
	fmt.Fprintf(a.out, "Backend is %s\n", a.Mode())
	return nil
}

// Stats prints the collected counters and gauges.
func (a *App) Stats(ctx context.Context) error {
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, v))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
	return nil
}
