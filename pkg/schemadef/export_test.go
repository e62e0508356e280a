package schemadef

var HasDupSchemaNames = hasDupSchemaNames
