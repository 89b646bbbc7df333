// Package props provides once-per-process loading of .properties files for
// the file tier of configuration resolution.
//
// Files are loaded lazily on first access and never re-read: the convention
// is one checked-in properties file per component, named after the
// component, located on the loader's resource search path. A file that is
// missing, unreadable or malformed degrades to "contributes nothing" so a
// broken file can never prevent the other tiers from being tried.
//
// Parsing is delegated to github.com/magiconair/properties, which implements
// the full .properties escape and line-continuation rules.
//
// Usage:
//
//	loader := props.NewLoader("config", "/etc/myapp")
//	value, ok := loader.Lookup("database.properties", "orders.jdbc.url")
package props
