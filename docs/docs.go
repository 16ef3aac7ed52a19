// Package docs holds the Swagger document served under /swagger.
// It is maintained by hand to match the annotations in internal/adapter/http;
// keep the two in sync when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/rail-reserve/railway-reservation-system/issues"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.HealthResponse"}}
                }
            }
        },
        "/api/v1/stations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List stations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.StationsResponse"}}
                }
            }
        },
        "/api/v1/trains": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List trains",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.TrainsResponse"}}
                }
            }
        },
        "/api/v1/trains/search": {
            "post": {
                "description": "Direct trains between two stations in a class, with mocked availability and fares. Stateless.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Search trains",
                "parameters": [
                    {"description": "Search query", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SearchTrainsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SearchResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Start a booking session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.SessionResponse"}}
                }
            }
        },
        "/api/v1/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Booking summary of a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SessionResponse"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/sessions/{id}/search": {
            "post": {
                "description": "Stores the query and results on the session and drops any previous selection.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Search trains within a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Search query", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SearchTrainsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SearchResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/sessions/{id}/selection": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Select train, class and coach",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Selection", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SelectCoachRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SeatMapResponse"}},
                    "400": {"description": "Validation error or class not offered", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "404": {"description": "Unknown session or coach, or train not in the search results", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "409": {"description": "No search on session", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/sessions/{id}/seats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Seat map of the selected coach",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SeatMapResponse"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "409": {"description": "No coach selected", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/sessions/{id}/seats/{seat}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Select or release a seat",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Seat ID, e.g. A1", "name": "seat", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BookingSummary"}},
                    "400": {"description": "Invalid seat", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "409": {"description": "Seat occupied or seat count equals passenger count", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/sessions/{id}/passengers": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Change the passenger count",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Passenger count", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SetPassengersRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BookingSummary"}},
                    "400": {"description": "Below the seats already selected", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "409": {"description": "No search on session", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/sessions/{id}/checkout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Open checkout",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CheckoutResponse"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "409": {"description": "Seat count does not match passenger count", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/sessions/{id}/payment": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Pay and issue the ticket",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.PaymentResponse"}},
                    "404": {"description": "Unknown session", "schema": {"$ref": "#/definitions/response.ErrorDetail"}},
                    "409": {"description": "No pending checkout or seat sold meanwhile", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/tickets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "List tickets, most recent first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.TicketsResponse"}}
                }
            }
        },
        "/api/v1/tickets/{pnr}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Ticket by PNR",
                "parameters": [
                    {"type": "string", "description": "PNR", "name": "pnr", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.TicketResponse"}},
                    "404": {"description": "Unknown PNR", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        },
        "/api/v1/tickets/{pnr}/pdf": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["tickets"],
                "summary": "E-ticket PDF",
                "parameters": [
                    {"type": "string", "description": "PNR", "name": "pnr", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Unknown PNR", "schema": {"$ref": "#/definitions/response.ErrorDetail"}}
                }
            }
        }
    },
    "definitions": {
        "response.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "validation_error"},
                "message": {"type": "string", "example": "Request validation failed"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "response.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "stations": {"type": "integer"},
                "trains": {"type": "integer"},
                "sessions": {"type": "integer"},
                "tickets": {"type": "integer"}
            }
        },
        "domain.Station": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "NDLS"},
                "name": {"type": "string", "example": "New Delhi"}
            }
        },
        "domain.Train": {
            "type": "object",
            "properties": {
                "no": {"type": "string", "example": "12952"},
                "name": {"type": "string", "example": "Rajdhani Express"},
                "route": {"type": "array", "items": {"type": "string"}},
                "classes": {"type": "array", "items": {"type": "string"}},
                "dep": {"type": "string", "example": "16:25"},
                "arr": {"type": "string", "example": "08:15"},
                "baseFare": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "domain.CoachAvailability": {
            "type": "object",
            "properties": {
                "coach": {"type": "string", "example": "S1"},
                "seatsLeft": {"type": "integer", "example": 34}
            }
        },
        "domain.FareQuote": {
            "type": "object",
            "properties": {
                "baseFare": {"type": "integer", "example": 1850},
                "convenienceFee": {"type": "integer", "example": 93},
                "unitFare": {"type": "integer", "example": 1943},
                "passengers": {"type": "integer", "example": 2},
                "total": {"type": "integer", "example": 3886},
                "fallback": {"type": "boolean"}
            }
        },
        "domain.SearchQuery": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "to": {"type": "string"},
                "date": {"type": "string"},
                "cls": {"type": "string"},
                "pax": {"type": "integer"}
            }
        },
        "domain.SearchResult": {
            "type": "object",
            "properties": {
                "train": {"$ref": "#/definitions/domain.Train"},
                "availability": {"type": "array", "items": {"$ref": "#/definitions/domain.CoachAvailability"}},
                "fare": {"$ref": "#/definitions/domain.FareQuote"}
            }
        },
        "domain.SearchResponse": {
            "type": "object",
            "properties": {
                "query": {"$ref": "#/definitions/domain.SearchQuery"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/domain.SearchResult"}},
                "total": {"type": "integer"}
            }
        },
        "domain.Seat": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "A1"},
                "row": {"type": "string", "example": "A"},
                "col": {"type": "integer", "example": 1},
                "status": {"type": "string", "enum": ["available", "occupied", "selected"]},
                "price": {"type": "integer", "example": 1943}
            }
        },
        "domain.SeatMap": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "example": "12952|3A|2026-11-02|S1"},
                "unitFare": {"type": "integer"},
                "seats": {"type": "array", "items": {"$ref": "#/definitions/domain.Seat"}}
            }
        },
        "domain.BookingSummary": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "state": {"type": "string", "enum": ["no_selection", "selecting", "ready", "confirmed"]},
                "trainNo": {"type": "string"},
                "trainName": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "date": {"type": "string"},
                "cls": {"type": "string"},
                "coach": {"type": "string"},
                "pax": {"type": "integer"},
                "seats": {"type": "array", "items": {"type": "string"}},
                "unitFare": {"type": "integer"},
                "total": {"type": "integer"},
                "canCheckout": {"type": "boolean"},
                "checkoutOpen": {"type": "boolean"},
                "lastPnr": {"type": "string"}
            }
        },
        "http.SearchTrainsRequest": {
            "type": "object",
            "properties": {
                "from": {"type": "string", "example": "NDLS"},
                "to": {"type": "string", "example": "BCT"},
                "date": {"type": "string", "example": "2026-11-02"},
                "cls": {"type": "string", "example": "3A"},
                "pax": {"type": "integer", "example": 2}
            }
        },
        "http.SelectCoachRequest": {
            "type": "object",
            "properties": {
                "trainNo": {"type": "string", "example": "12952"},
                "cls": {"type": "string", "example": "3A"},
                "coach": {"type": "string", "example": "S1"}
            }
        },
        "http.SetPassengersRequest": {
            "type": "object",
            "properties": {
                "pax": {"type": "integer", "example": 2}
            }
        },
        "http.StationsResponse": {
            "type": "object",
            "properties": {
                "stations": {"type": "array", "items": {"$ref": "#/definitions/domain.Station"}},
                "total": {"type": "integer"}
            }
        },
        "http.TrainsResponse": {
            "type": "object",
            "properties": {
                "trains": {"type": "array", "items": {"$ref": "#/definitions/domain.Train"}},
                "stats": {
                    "type": "object",
                    "properties": {
                        "stations": {"type": "integer"},
                        "trains": {"type": "integer"}
                    }
                }
            }
        },
        "http.SessionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "createdAt": {"type": "string"},
                "summary": {"$ref": "#/definitions/domain.BookingSummary"}
            }
        },
        "http.SeatMapResponse": {
            "type": "object",
            "properties": {
                "seatMap": {"$ref": "#/definitions/domain.SeatMap"},
                "summary": {"$ref": "#/definitions/domain.BookingSummary"}
            }
        },
        "http.CheckoutResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "12952 Rajdhani Express • NDLS→BCT • 2026-11-02 • 3A S1 • Seats: A1, A2"},
                "amount": {"type": "integer", "example": 3886},
                "amountFormatted": {"type": "string", "example": "₹3,886"}
            }
        },
        "http.TicketResponse": {
            "type": "object",
            "properties": {
                "pnr": {"type": "string", "example": "K7M2QX9A"},
                "trainNo": {"type": "string"},
                "trainName": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "date": {"type": "string"},
                "cls": {"type": "string"},
                "coach": {"type": "string"},
                "seats": {"type": "array", "items": {"type": "string"}},
                "amount": {"type": "integer"},
                "bookedAt": {"type": "string"},
                "amountFormatted": {"type": "string", "example": "₹3,886"},
                "bookedAtDisplay": {"type": "string", "example": "19 Oct 2026, 14:05 IST"}
            }
        },
        "http.TicketsResponse": {
            "type": "object",
            "properties": {
                "tickets": {"type": "array", "items": {"$ref": "#/definitions/http.TicketResponse"}},
                "total": {"type": "integer"}
            }
        },
        "http.PaymentResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Payment successful. PNR: K7M2QX9A"},
                "state": {"type": "string", "example": "confirmed"},
                "ticket": {"$ref": "#/definitions/http.TicketResponse"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "RailReserve API",
	Description:      "Train search, seat selection, mock payment and e-ticket issuance for a single-operator reservation desk.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
