// Package respond implements the message-matching core of the bot: handler
// group registration, installation into ready-to-match dispatch entries,
// and concurrent dispatch of inbound messages against those entries.
package respond

// HandlerFunc is the invocation signature for registered handlers. A
// returned error is logged by the dispatcher and otherwise discarded;
// dispatch is fire-and-forget.
type HandlerFunc func(msg *Message, opts Options) error

// HandlerRef names a registered handler by its owning group and its own
// name, so failures stay attributable to a specific registration.
type HandlerRef struct {
	Group string
	Name  string
}

func (ref HandlerRef) String() string {
	return ref.Group + "/" + ref.Name
}

// RegistryEntry is one declared pattern/handler pair. The pattern stays in
// source form until Install compiles it.
type RegistryEntry struct {
	Pattern string
	Ref     HandlerRef
	Handler HandlerFunc
}

// Responder is one handler group: the declaration-time registry of
// pattern/handler pairs. Registration runs single-threaded while the group
// is being built; a Responder is treated as read-only once handed to
// Install.
type Responder struct {
	group     string
	ambient   []RegistryEntry
	addressed []RegistryEntry
	usage     []string
}

// NewResponder creates an empty handler group with the given name.
func NewResponder(group string) *Responder {
	return &Responder{group: group}
}

// Group returns the handler group name.
func (r *Responder) Group() string {
	return r.group
}

// Hear registers an ambient pattern: it matches anywhere in a message's
// text, whether or not the message is addressed to the bot.
func (r *Responder) Hear(pattern, name string, fn HandlerFunc) {
	r.ambient = append(r.ambient, RegistryEntry{
		Pattern: pattern,
		Ref:     HandlerRef{Group: r.group, Name: name},
		Handler: fn,
	})
}

// Respond registers an addressed pattern: it only matches when the message
// is directed at the bot. Install rewrites it against the bot identity.
func (r *Responder) Respond(pattern, name string, fn HandlerFunc) {
	r.addressed = append(r.addressed, RegistryEntry{
		Pattern: pattern,
		Ref:     HandlerRef{Group: r.group, Name: name},
		Handler: fn,
	})
}

// Usage appends human-readable help lines for this group. The core only
// stores them; formatting belongs to whoever presents help.
func (r *Responder) Usage(lines ...string) {
	r.usage = append(r.usage, lines...)
}

// UsageLines returns a snapshot of the accumulated help lines.
func (r *Responder) UsageLines() []string {
	out := make([]string, len(r.usage))
	copy(out, r.usage)
	return out
}

// AmbientEntries returns a snapshot of the ambient registrations in
// declaration order.
func (r *Responder) AmbientEntries() []RegistryEntry {
	out := make([]RegistryEntry, len(r.ambient))
	copy(out, r.ambient)
	return out
}

// AddressedEntries returns a snapshot of the addressed registrations in
// declaration order.
func (r *Responder) AddressedEntries() []RegistryEntry {
	out := make([]RegistryEntry, len(r.addressed))
	copy(out, r.addressed)
	return out
}
