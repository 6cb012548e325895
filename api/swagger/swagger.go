package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Scholarship Portal Gateway",
        "description": "Backend-for-frontend gateway in front of the scholarship API",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Session",
            "description": "Browser session lifecycle"
        },
        {
            "name": "Reference",
            "description": "Cached scholarship reference data"
        },
        {
            "name": "College Review",
            "description": "College review panel"
        },
        {
            "name": "Rankings",
            "description": "Rankings and quota distribution"
        },
        {
            "name": "Rosters",
            "description": "Payment rosters"
        },
        {
            "name": "Users",
            "description": "User and permission administration"
        },
        {
            "name": "Relationships",
            "description": "Professor and student relationships"
        },
        {
            "name": "Emails",
            "description": "Scheduled email approval"
        },
        {
            "name": "Audit",
            "description": "Application and gateway audit logs"
        },
        {
            "name": "Exports",
            "description": "Signed export downloads"
        },
        {
            "name": "System",
            "description": "Health and runtime configuration"
        },
        {
            "name": "Professor Review",
            "description": "Professor recommendations"
        },
        {
            "name": "Profile",
            "description": "Signed-in user profile"
        },
        {
            "name": "Scholarships",
            "description": "Scholarship documents"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Dependency health",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Degraded"
                    }
                }
            }
        },
        "/config": {
            "get": {
                "tags": [
                    "Config"
                ],
                "summary": "Browser runtime configuration",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/auth/session": {
            "post": {
                "tags": [
                    "Session"
                ],
                "summary": "Start a session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Role does not match token",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginSessionRequest"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "Session"
                ],
                "summary": "Restore the current session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Session"
                ],
                "summary": "End the session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/auth/session/user": {
            "patch": {
                "tags": [
                    "Session"
                ],
                "summary": "Update the session user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateSessionUserRequest"
                        }
                    }
                ]
            }
        },
        "/reference/invalidate": {
            "post": {
                "tags": [
                    "Reference"
                ],
                "summary": "Drop cached reference data",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/reference/my-scholarships": {
            "get": {
                "tags": [
                    "Reference"
                ],
                "summary": "Scholarships filtered by permission",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/reference/permissions": {
            "get": {
                "tags": [
                    "Reference"
                ],
                "summary": "Caller scholarship permissions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/reference/scholarships": {
            "get": {
                "tags": [
                    "Reference"
                ],
                "summary": "Scholarships visible to the caller",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/reference/sub-type-translations": {
            "get": {
                "tags": [
                    "Reference"
                ],
                "summary": "Sub-type translations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/user-profiles/me": {
            "get": {
                "tags": [
                    "Profile"
                ],
                "summary": "Current user's profile",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Profile"
                ],
                "summary": "Update the current user's profile",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "description": "Fields to change",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/applications": {
            "get": {
                "tags": [
                    "College Review"
                ],
                "summary": "Applications awaiting review",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "scholarship_type",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "academic_year",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "semester",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/applications/{id}/approve": {
            "post": {
                "tags": [
                    "College Review"
                ],
                "summary": "Approve an application",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/applications/{id}/reject": {
            "post": {
                "tags": [
                    "College Review"
                ],
                "summary": "Reject an application",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RejectApplicationRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/applications/{id}/request-documents": {
            "post": {
                "tags": [
                    "College Review"
                ],
                "summary": "Ask the applicant for more documents",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Application ID",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "description": "Documents",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RequestDocumentsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/available-periods": {
            "get": {
                "tags": [
                    "Rankings"
                ],
                "summary": "Academic periods for a scholarship type",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "scholarship_type",
                        "in": "query",
                        "description": "Scholarship type code",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/quota-status": {
            "get": {
                "tags": [
                    "Rankings"
                ],
                "summary": "Quota usage per sub-type",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "scholarship_type_id",
                        "in": "query",
                        "description": "Scholarship type ID",
                        "type": "integer"
                    },
                    {
                        "name": "academic_year",
                        "in": "query",
                        "description": "Academic year",
                        "type": "integer"
                    },
                    {
                        "name": "semester",
                        "in": "query",
                        "description": "Semester",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/rankings": {
            "get": {
                "tags": [
                    "Rankings"
                ],
                "summary": "List rankings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "scholarship_type_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "academic_year",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "semester",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "Rankings"
                ],
                "summary": "Create a ranking",
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateRankingRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/rankings/{id}": {
            "get": {
                "tags": [
                    "Rankings"
                ],
                "summary": "Ranking detail",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/rankings/{id}/distribute": {
            "post": {
                "tags": [
                    "Rankings"
                ],
                "summary": "Run quota distribution",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/rankings/{id}/export": {
            "post": {
                "tags": [
                    "Rankings"
                ],
                "summary": "Export a ranking",
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/rankings/{id}/finalize": {
            "post": {
                "tags": [
                    "Rankings"
                ],
                "summary": "Finalize a ranking",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/rankings/{id}/order": {
            "put": {
                "tags": [
                    "Rankings"
                ],
                "summary": "Reorder a ranking",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Ranking ID",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "description": "New order",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateRankingOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/college-review/workflow-snapshot": {
            "post": {
                "tags": [
                    "Rankings"
                ],
                "summary": "Export the review workflow of a period as JSON",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "scholarship_type_id",
                        "in": "query",
                        "description": "Scholarship type ID",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "academic_year",
                        "in": "query",
                        "description": "Academic year",
                        "type": "integer"
                    },
                    {
                        "name": "semester",
                        "in": "query",
                        "description": "Semester",
                        "type": "string"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/professor/applications": {
            "get": {
                "tags": [
                    "Professor Review"
                ],
                "summary": "Applications assigned to the professor",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "status",
                        "in": "query",
                        "description": "Application status",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/professor/applications/{id}/review": {
            "post": {
                "tags": [
                    "Professor Review"
                ],
                "summary": "Submit a review",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ProfessorReviewRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/professor/applications/{id}/sub-types": {
            "get": {
                "tags": [
                    "Professor Review"
                ],
                "summary": "Sub-types the professor may recommend for",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Application ID",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/rosters": {
            "get": {
                "tags": [
                    "Rosters"
                ],
                "summary": "List payment rosters",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "configuration_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "size",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/rosters/configurations": {
            "get": {
                "tags": [
                    "Rosters"
                ],
                "summary": "Active scholarship configurations for roster generation",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "scholarship_code",
                        "in": "query",
                        "description": "Scholarship code",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/rosters/generate": {
            "post": {
                "tags": [
                    "Rosters"
                ],
                "summary": "Generate a roster",
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/GenerateRosterRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/rosters/periods": {
            "get": {
                "tags": [
                    "Rosters"
                ],
                "summary": "Roster periods with display state",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "configuration_id",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/rosters/{id}": {
            "get": {
                "tags": [
                    "Rosters"
                ],
                "summary": "Payment roster detail",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Roster ID",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/rosters/{id}/download": {
            "get": {
                "tags": [
                    "Rosters"
                ],
                "summary": "Download the roster file",
                "produces": [
                    "application/octet-stream"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/rosters/{id}/export": {
            "post": {
                "tags": [
                    "Rosters"
                ],
                "summary": "Render a roster locally to a signed download",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Roster ID",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "description": "csv, pdf, xlsx or json",
                        "type": "string"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/rosters/{id}/lock": {
            "post": {
                "tags": [
                    "Rosters"
                ],
                "summary": "Lock a roster",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Roster ID",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "description": "Reason",
                        "schema": {
                            "$ref": "#/definitions/LockRosterRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/rosters/{id}/unlock": {
            "post": {
                "tags": [
                    "Rosters"
                ],
                "summary": "Unlock a roster",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Roster ID",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "description": "Reason",
                        "schema": {
                            "$ref": "#/definitions/LockRosterRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/applications/{id}/audit-trail": {
            "get": {
                "tags": [
                    "Audit"
                ],
                "summary": "History of one application",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Application ID",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/users": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "role",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "Users"
                ],
                "summary": "Create user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "description": "User payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/users/{id}": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Get user",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "User ID",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "Users"
                ],
                "summary": "Update user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "User ID",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "description": "User payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Users"
                ],
                "summary": "Delete user",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "User ID",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/users/{id}/scholarship-permissions": {
            "put": {
                "tags": [
                    "Users"
                ],
                "summary": "Replace scholarship permissions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateScholarshipPermissionsRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Scholarship permissions granted to a user",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "User ID",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/audit-logs": {
            "get": {
                "tags": [
                    "Audit"
                ],
                "summary": "Backend audit logs",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "action",
                        "in": "query",
                        "description": "Action",
                        "type": "string"
                    },
                    {
                        "name": "resource_type",
                        "in": "query",
                        "description": "Resource type",
                        "type": "string"
                    },
                    {
                        "name": "user_id",
                        "in": "query",
                        "description": "User ID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/gateway-audit": {
            "get": {
                "tags": [
                    "Audit"
                ],
                "summary": "Requests recorded by the gateway",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "query",
                        "description": "User ID",
                        "type": "string"
                    },
                    {
                        "name": "resource",
                        "in": "query",
                        "description": "Resource",
                        "type": "string"
                    },
                    {
                        "name": "since",
                        "in": "query",
                        "description": "RFC3339 lower bound",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "description": "Max rows",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/professor-student": {
            "get": {
                "tags": [
                    "Relationships"
                ],
                "summary": "Professor-student relationships",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "professor_id",
                        "in": "query",
                        "description": "Professor user ID",
                        "type": "integer"
                    },
                    {
                        "name": "student_id",
                        "in": "query",
                        "description": "Student user ID",
                        "type": "integer"
                    },
                    {
                        "name": "relationship_type",
                        "in": "query",
                        "description": "Relationship type",
                        "type": "string"
                    },
                    {
                        "name": "active_only",
                        "in": "query",
                        "description": "Only active rows",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "Relationships"
                ],
                "summary": "Link a professor to a student",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "description": "Relationship",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateRelationshipRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/professor-student/{id}": {
            "put": {
                "tags": [
                    "Relationships"
                ],
                "summary": "Update a relationship",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Relationship ID",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "description": "Changes",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateRelationshipRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Relationships"
                ],
                "summary": "Remove a relationship",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Relationship ID",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/scheduled-emails": {
            "get": {
                "tags": [
                    "Emails"
                ],
                "summary": "Scheduled notification emails",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "status",
                        "in": "query",
                        "description": "Status",
                        "type": "string"
                    },
                    {
                        "name": "scholarship_type",
                        "in": "query",
                        "description": "Scholarship type",
                        "type": "string"
                    },
                    {
                        "name": "requires_approval",
                        "in": "query",
                        "description": "Only rows needing approval",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/scheduled-emails/{id}/approve": {
            "patch": {
                "tags": [
                    "Emails"
                ],
                "summary": "Approve a scheduled email",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Email ID",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/scheduled-emails/{id}/cancel": {
            "patch": {
                "tags": [
                    "Emails"
                ],
                "summary": "Cancel a scheduled email",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "description": "Email ID",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/scholarships/{type}/upload-terms": {
            "post": {
                "tags": [
                    "Scholarships"
                ],
                "summary": "Upload a terms document",
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "name": "type",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    },
                    {
                        "name": "Authorization",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Relayed backend response"
                    },
                    "400": {
                        "description": "Missing type or file"
                    },
                    "401": {
                        "description": "Missing Authorization header"
                    }
                }
            }
        },
        "/exports/{token}": {
            "get": {
                "tags": [
                    "Exports"
                ],
                "summary": "Download an export",
                "produces": [
                    "application/octet-stream"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File"
                    },
                    "404": {
                        "description": "Expired or missing"
                    }
                }
            }
        }
    },
    "definitions": {
        "LoginSessionRequest": {
            "type": "object",
            "required": [
                "token",
                "user"
            ],
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "type": "object"
                }
            }
        },
        "UpdateSessionUserRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "RejectApplicationRequest": {
            "type": "object",
            "required": [
                "reason"
            ],
            "properties": {
                "reason": {
                    "type": "string"
                }
            }
        },
        "CreateRankingRequest": {
            "type": "object",
            "required": [
                "scholarship_type_id",
                "sub_type_code",
                "academic_year"
            ],
            "properties": {
                "scholarship_type_id": {
                    "type": "integer"
                },
                "sub_type_code": {
                    "type": "string"
                },
                "academic_year": {
                    "type": "integer"
                },
                "semester": {
                    "type": "string"
                },
                "ranking_name": {
                    "type": "string"
                },
                "force_new": {
                    "type": "boolean"
                }
            }
        },
        "ProfessorReviewItem": {
            "type": "object",
            "properties": {
                "sub_type_code": {
                    "type": "string"
                },
                "recommendation": {
                    "type": "string",
                    "enum": [
                        "approve",
                        "reject",
                        "pending"
                    ]
                },
                "comments": {
                    "type": "string"
                }
            }
        },
        "ProfessorReviewRequest": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ProfessorReviewItem"
                    }
                },
                "recommendation": {
                    "type": "string"
                }
            }
        },
        "GenerateRosterRequest": {
            "type": "object",
            "required": [
                "scholarship_configuration_id",
                "period_label"
            ],
            "properties": {
                "scholarship_configuration_id": {
                    "type": "integer"
                },
                "period_label": {
                    "type": "string"
                },
                "roster_cycle": {
                    "type": "string",
                    "enum": [
                        "monthly",
                        "semi_yearly",
                        "yearly"
                    ]
                },
                "academic_year": {
                    "type": "integer"
                },
                "student_verification_enabled": {
                    "type": "boolean"
                },
                "force_regenerate": {
                    "type": "boolean"
                }
            }
        },
        "UpdateScholarshipPermissionsRequest": {
            "type": "object",
            "properties": {
                "scholarship_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "comment": {
                    "type": "string"
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "data": {
                    "type": "object"
                },
                "message": {
                    "type": "string"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
            }
        },
        "CreateRelationshipRequest": {
            "type": "object",
            "required": [
                "professor_id",
                "student_id",
                "relationship_type"
            ],
            "properties": {
                "professor_id": {
                    "type": "integer"
                },
                "student_id": {
                    "type": "integer"
                },
                "relationship_type": {
                    "type": "string"
                },
                "academic_year": {
                    "type": "integer"
                },
                "semester": {
                    "type": "string"
                },
                "can_view_applications": {
                    "type": "boolean"
                },
                "can_upload_documents": {
                    "type": "boolean"
                },
                "can_review_applications": {
                    "type": "boolean"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "UpdateRelationshipRequest": {
            "type": "object",
            "properties": {
                "relationship_type": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "can_view_applications": {
                    "type": "boolean"
                },
                "can_upload_documents": {
                    "type": "boolean"
                },
                "can_review_applications": {
                    "type": "boolean"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "RequestDocumentsRequest": {
            "type": "object",
            "required": [
                "requested_documents",
                "reason"
            ],
            "properties": {
                "requested_documents": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "reason": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "UpdateRankingOrderRequest": {
            "type": "object",
            "required": [
                "items"
            ],
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/RankingOrderItem"
                    }
                }
            }
        },
        "RankingOrderItem": {
            "type": "object",
            "required": [
                "application_id",
                "position"
            ],
            "properties": {
                "application_id": {
                    "type": "integer"
                },
                "position": {
                    "type": "integer"
                }
            }
        },
        "LockRosterRequest": {
            "type": "object",
            "properties": {
                "reason": {
                    "type": "string"
                }
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "required": [
                "nycu_id",
                "name",
                "email",
                "role"
            ],
            "properties": {
                "nycu_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "user_type": {
                    "type": "string"
                },
                "dept_code": {
                    "type": "string"
                },
                "college_code": {
                    "type": "string"
                },
                "comment": {
                    "type": "string"
                }
            }
        },
        "UpdateUserRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "dept_code": {
                    "type": "string"
                },
                "college_code": {
                    "type": "string"
                },
                "comment": {
                    "type": "string"
                }
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
