package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Smashpoint Academy API",
        "description": "Session scheduling and facility blackout management",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Staff login"},
        {"name": "Sessions", "description": "Practice session scheduling"},
        {"name": "Blackouts", "description": "Facility blackout windows"},
        {"name": "Classes", "description": "Training group management"},
        {"name": "Locations", "description": "Facility management"},
        {"name": "Coaches", "description": "Coach roster"},
        {"name": "Players", "description": "Player roster"},
        {"name": "Attendance", "description": "Attendance log"},
        {"name": "Exports", "description": "Schedule downloads"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate by name and PIN",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/sessions": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List sessions",
                "parameters": [
                    {"name": "day", "in": "query", "type": "string", "description": "Weekday label filter (e.g. mon)"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Session"}}}
                }
            },
            "post": {
                "tags": ["Sessions"],
                "summary": "Create session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OkBody"}},
                    "400": {"description": "Closed weekday, blackout, or invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/sessions/{id}": {
            "put": {
                "tags": ["Sessions"],
                "summary": "Update session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OkBody"}}
                }
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "Delete session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OkBody"}}
                }
            }
        },
        "/sessions/generate": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Generate sessions over a date range",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/GenerateResult"}},
                    "400": {"description": "Invalid range", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/sessions/{id}/participants": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List session roster",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Sessions"],
                "summary": "Add roster entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ParticipantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OkBody"}}
                }
            }
        },
        "/sessions/{id}/participants/{participantId}": {
            "delete": {
                "tags": ["Sessions"],
                "summary": "Remove roster entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "participantId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OkBody"}}
                }
            }
        },
        "/session-blackouts": {
            "get": {
                "tags": ["Blackouts"],
                "summary": "List blackout windows",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Blackout"}}}
                }
            },
            "post": {
                "tags": ["Blackouts"],
                "summary": "Declare a blackout window and cancel covered sessions",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BlackoutRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OkBody"}},
                    "400": {"description": "Invalid range", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/session-blackouts/{id}": {
            "delete": {
                "tags": ["Blackouts"],
                "summary": "Delete a blackout window",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OkBody"}}
                }
            }
        },
        "/session-blackouts/check": {
            "get": {
                "tags": ["Blackouts"],
                "summary": "Check whether a date is blocked",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "location_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List the attendance log",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Record an attendance batch",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OkBody"}}
                }
            }
        },
        "/sessions/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the schedule",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "description": "csv (default) or pdf"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "pin": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_at": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "Session": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "class_id": {"type": "string"},
                "coach_id": {"type": "string"},
                "location_id": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "court": {"type": "string"},
                "notes": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "SessionRequest": {
            "type": "object",
            "required": ["name", "class_id", "date"],
            "properties": {
                "name": {"type": "string"},
                "class_id": {"type": "string"},
                "coach_id": {"type": "string"},
                "location_id": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "court": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "ParticipantRequest": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "player_name": {"type": "string"}
            }
        },
        "GenerateRequest": {
            "type": "object",
            "required": ["start_date", "end_date"],
            "properties": {
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "class_id": {"type": "string"},
                "location_id": {"type": "string"}
            }
        },
        "GenerateResult": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "created": {"type": "integer"},
                "skipped": {"type": "integer"}
            }
        },
        "Blackout": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "reason": {"type": "string"},
                "location_id": {"type": "string"}
            }
        },
        "BlackoutRequest": {
            "type": "object",
            "required": ["start_date", "end_date"],
            "properties": {
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "reason": {"type": "string"},
                "location_id": {"type": "string"}
            }
        },
        "OkBody": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
