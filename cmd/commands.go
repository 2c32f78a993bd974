package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
	cancelReservationUC "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/cancel_reservation"
	searchServicesUC "github.com/m04kA/SMC-MarketplaceClient/internal/usecase/search_services"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/ptr"
)

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"login":          {"sign in and store the session", runLogin},
	"register":       {"create a client or agency account", runRegister},
	"logout":         {"sign out and clear the stored session", runLogout},
	"whoami":         {"show the stored session", runWhoami},
	"services":       {"search the service catalog", runServices},
	"dashboard":      {"load the dashboard of the signed in role", runDashboard},
	"book":           {"book a service as a guest", runBook},
	"cancel":         {"cancel a reservation", runCancel},
	"invoice":        {"render a reservation invoice as HTML", runInvoice},
	"agency-profile": {"update the signed in agency profile", runAgencyProfile},
}

var commandOrder = []string{
	"login", "register", "logout", "whoami",
	"services", "dashboard", "book", "cancel", "invoice", "agency-profile",
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n%s", name, fs.FlagUsages())
	}
	return fs
}

func runLogin(ctx context.Context, a *app, args []string) error {
	req := &marketplace.LoginRequest{}
	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	payload, err := a.auth.Login(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", payload.User.Name, payload.EffectiveRole())
	consoleNavigator{w: a.out}.Navigate(a.auth.RedirectTarget(ctx))
	return nil
}

func runRegister(ctx context.Context, a *app, args []string) error {
	req := &marketplace.RegisterRequest{}
	var role string
	fs := newFlagSet("register")
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.PasswordConfirmation, "password-confirmation", "", "password confirmation")
	fs.StringVar(&role, "role", string(domain.RoleClient), "account role (client or agency)")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	fs.StringVar(&req.AgencyName, "agency-name", "", "agency name (agency role only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req.Role = domain.Role(role)

	payload, err := a.auth.Register(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered %s (%s)\n", payload.User.Email, payload.EffectiveRole())
	consoleNavigator{w: a.out}.Navigate(a.auth.RedirectTarget(ctx))
	return nil
}

func runLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func runWhoami(ctx context.Context, a *app, _ []string) error {
	st := a.auth.State(ctx)
	if !st.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", st.User.Name, st.User.Email)
	fmt.Fprintf(a.out, "role: %s\n", ptr.Value(st.Role))
	if agency, err := a.session.GetAgency(ctx); err == nil && agency != nil {
		fmt.Fprintf(a.out, "agency: %s (%s)\n", agency.Name, agency.ID)
	}
	if clientID, err := a.session.GetClientID(ctx); err == nil && clientID != nil {
		fmt.Fprintf(a.out, "client id: %s\n", *clientID)
	}
	return nil
}

func runServices(ctx context.Context, a *app, args []string) error {
	var (
		filter   domain.ServiceFilter
		category string
	)
	fs := newFlagSet("services")
	fs.StringVar(&category, "category", "", "category id")
	fs.StringVar(&filter.Location, "location", "", "location")
	fs.IntVar(&filter.Page, "page", 0, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter.CategoryID = domain.ID(category)

	resp, err := a.searchServices.Execute(ctx, &searchServicesUC.Request{
		Query:  strings.Join(fs.Args(), " "),
		Filter: filter,
	})
	if err != nil {
		return err
	}

	for _, s := range resp.Services {
		fmt.Fprintf(a.out, "%-6s %-40s %10.2f  %s\n", s.ID, s.Title, s.Price, s.Location)
	}
	if len(resp.Services) == 0 {
		fmt.Fprintln(a.out, "No services found")
	}
	return nil
}

func runDashboard(ctx context.Context, a *app, _ []string) error {
	resp, err := a.loadDashboard.Execute(ctx)
	if err != nil {
		return err
	}
	return printJSON(a, resp)
}

func runBook(ctx context.Context, a *app, args []string) error {
	input := &marketplace.PublicReservationInput{}
	var serviceID string
	fs := newFlagSet("book")
	fs.StringVar(&serviceID, "service", "", "service id")
	fs.StringVar(&input.ReservationDate, "date", "", "reservation date (YYYY-MM-DD)")
	fs.StringVar(&input.StartTime, "time", "", "start time (HH:MM)")
	fs.IntVar(&input.NumberOfPeople, "people", 1, "number of people")
	fs.StringVar(&input.SpecialRequests, "requests", "", "special requests")
	fs.StringVar(&input.GuestName, "name", "", "guest name")
	fs.StringVar(&input.GuestEmail, "email", "", "guest email")
	fs.StringVar(&input.GuestPhone, "phone", "", "guest phone")
	if err := fs.Parse(args); err != nil {
		return err
	}
	input.ServiceID = domain.ID(serviceID)

	resp, err := a.guestBooking.Execute(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Reservation %s created for %s on %s (%s)\n",
		resp.Reservation.ID, resp.Service.Title, resp.Reservation.ReservationDate, resp.Reservation.Status)
	fmt.Fprintf(a.out, "Total: %.2f\n", resp.Reservation.TotalPrice)
	return nil
}

func runCancel(ctx context.Context, a *app, args []string) error {
	req := &cancelReservationUC.Request{}
	fs := newFlagSet("cancel")
	fs.StringVar(&req.Reason, "reason", "", "cancellation reason")
	fs.BoolVar(&req.Force, "force", false, "send the request even after the cancellation deadline")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: cancel [--reason text] [--force] <reservation-id>")
	}
	req.ReservationID = domain.ID(fs.Arg(0))

	reservation, err := a.cancelReservation.Execute(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Reservation %s is %s\n", reservation.ID, reservation.Status)
	return nil
}

func runInvoice(ctx context.Context, a *app, args []string) error {
	var output string
	fs := newFlagSet("invoice")
	fs.StringVarP(&output, "output", "o", "", "write HTML to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: invoice [-o file] <reservation-id>")
	}

	resp, err := a.renderInvoice.Execute(ctx, domain.ID(fs.Arg(0)))
	if err != nil {
		return err
	}
	if output == "" {
		_, err = fmt.Fprint(a.out, resp.HTML)
		return err
	}
	if err := os.WriteFile(output, []byte(resp.HTML), 0o644); err != nil {
		return fmt.Errorf("failed to write invoice: %w", err)
	}
	fmt.Fprintf(a.out, "Invoice written to %s\n", output)
	return nil
}

func runAgencyProfile(ctx context.Context, a *app, args []string) error {
	input := &marketplace.AgencyProfileInput{}
	fs := newFlagSet("agency-profile")
	fs.StringVar(&input.Name, "name", "", "agency name")
	fs.StringVar(&input.Email, "email", "", "contact email")
	fs.StringVar(&input.Phone, "phone", "", "contact phone")
	fs.StringVar(&input.Description, "description", "", "agency description")
	fs.StringVar(&input.Logo, "logo", "", "logo URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	agency, err := a.updateAgencyProfile.Execute(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Agency %s updated\n", agency.Name)
	return nil
}

func printJSON(a *app, v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
