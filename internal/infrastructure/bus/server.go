package bus

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/bnema/dumbhint/internal/logging"
)

// ErrNameTaken is returned when another process owns the bus name.
var ErrNameTaken = errors.New("bus name already taken")

// Server owns a bus name and serves a Handler on it.
type Server struct {
	conn    *dbus.Conn
	name    string
	path    dbus.ObjectPath
	handler *Handler
}

// Serve connects to the session bus, exports handler at path and claims name.
func Serve(ctx context.Context, name, path string, handler *Handler) (*Server, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	s, err := ServeOn(ctx, conn, name, path, handler)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return s, nil
}

// ServeOn is Serve on an existing connection.
func ServeOn(ctx context.Context, conn *dbus.Conn, name, path string, handler *Handler) (*Server, error) {
	objPath := dbus.ObjectPath(path)
	if !objPath.IsValid() {
		return nil, fmt.Errorf("invalid object path %q", path)
	}

	if err := conn.Export(handler, objPath, Interface); err != nil {
		return nil, fmt.Errorf("export handler: %w", err)
	}
	node := introspect.Node{
		Name: path,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: Interface,
				Methods: []introspect.Method{{
					Name: "RunCommand",
					Args: []introspect.Arg{
						{Name: "argv", Type: "as", Direction: "in"},
						{Name: "output", Type: "s", Direction: "out"},
					},
				}},
			},
		},
	}
	if err := conn.Export(introspect.NewIntrospectable(&node), objPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		return nil, fmt.Errorf("export introspection: %w", err)
	}

	reply, err := conn.RequestName(name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return nil, fmt.Errorf("request bus name %s: %w", name, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return nil, fmt.Errorf("%w: %s", ErrNameTaken, name)
	}

	logging.FromContext(ctx).Info().Str("name", name).Str("path", path).Msg("serving commands on session bus")
	return &Server{conn: conn, name: name, path: objPath, handler: handler}, nil
}

// Name returns the claimed bus name.
func (s *Server) Name() string { return s.name }

// Close releases the name and the connection.
func (s *Server) Close() error {
	_, _ = s.conn.ReleaseName(s.name)
	return s.conn.Close()
}

// Send calls RunCommand on the dumbhint instance owning name.
func Send(ctx context.Context, name, path string, argv []string) (string, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return "", fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()
	return SendOn(ctx, conn, name, path, argv)
}

// SendOn is Send on an existing connection.
func SendOn(ctx context.Context, conn *dbus.Conn, name, path string, argv []string) (string, error) {
	var out string
	call := conn.Object(name, dbus.ObjectPath(path)).CallWithContext(ctx, Interface+".RunCommand", 0, argv)
	if err := call.Store(&out); err != nil {
		var dbusErr dbus.Error
		if errors.As(err, &dbusErr) && len(dbusErr.Body) > 0 {
			if msg, ok := dbusErr.Body[0].(string); ok {
				return "", errors.New(msg)
			}
		}
		return "", err
	}
	return out, nil
}
