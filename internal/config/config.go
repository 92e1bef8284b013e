package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and prices.
type Config struct {
    Env             string // application environment (e.g. "dev", "prod")
    Port            string // HTTP port to listen on
    DBUser          string // database username
    DBPass          string // database password (optional)
    DBHost          string // database host address
    DBPort          string // database port number
    DBName          string // database name
    JWTSecret       string // secret used to sign JWTs
    AccessTTLMin    int    // access token time-to-live in minutes
    RefreshTTLDays  int    // refresh token time-to-live in days
    BcryptCost      int    // bcrypt cost for password hashing
    StripeSecretKey string // Stripe API secret key
    Currency        string // payment currency code (lowercase, e.g. "inr")
    BaseURL         string // absolute base URL for payment redirect targets
    SMTPHost        string // outbound mail server host
    SMTPPort        string // outbound mail server port
    SMTPUser        string // SMTP username (empty disables auth)
    SMTPPass        string // SMTP password
    MailFrom        string // sender address for confirmation mail
    HoldTTLMin      int    // seat hold expiry window in minutes
    SeatPrice       int64  // fixed price per seat in major currency units
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Booking-flow knobs
// (currency, hold window, seat price) have defaults matching the intended
// deployment and only need to be set when they differ.
func Load() Config {
    return Config{
        Env:             must("APP_ENV"),                   // environment (dev/test/prod)
        Port:            must("APP_PORT"),                  // port to bind the HTTP server
        DBUser:          must("DB_USER"),                   // database user
        DBPass:          os.Getenv("DB_PASS"),              // database password (empty allowed)
        DBHost:          must("DB_HOST"),                   // database host
        DBPort:          must("DB_PORT"),                   // database port
        DBName:          must("DB_NAME"),                   // database name
        JWTSecret:       must("JWT_SECRET"),                // secret used for signing JWTs
        AccessTTLMin:    mustInt("ACCESS_TOKEN_TTL_MIN"),   // TTL for access tokens in minutes
        RefreshTTLDays:  mustInt("REFRESH_TOKEN_TTL_DAYS"), // TTL for refresh tokens in days
        BcryptCost:      mustInt("BCRYPT_COST"),            // bcrypt cost factor
        StripeSecretKey: must("STRIPE_SECRET_KEY"),         // Stripe secret key
        Currency:        getenv("CURRENCY", "inr"),         // checkout currency
        BaseURL:         must("BASE_URL"),                  // e.g. https://booking.example.com
        SMTPHost:        must("SMTP_HOST"),                 // mail server host
        SMTPPort:        getenv("SMTP_PORT", "587"),        // mail server port
        SMTPUser:        os.Getenv("SMTP_USER"),            // SMTP user (optional)
        SMTPPass:        os.Getenv("SMTP_PASS"),            // SMTP password (optional)
        MailFrom:        must("MAIL_FROM"),                 // confirmation sender address
        HoldTTLMin:      envInt("HOLD_TTL_MIN", 15),        // seat hold window
        SeatPrice:       envInt64("SEAT_PRICE", 200),       // fixed per-seat price
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// envInt64 reads an optional int64 variable with a default.
func envInt64(key string, def int64) int64 {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.ParseInt(s, 10, 64)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
