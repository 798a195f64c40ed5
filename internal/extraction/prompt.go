package extraction

// labelPrompt is the extraction instruction sent with every photo. The
// exact wording is part of the external contract: the response-format
// compliance of the model depends on it. Version any change deliberately.
const labelPrompt = `You are analyzing a photo of an agricultural chemical product label (pesticide, herbicide, or fertilizer).

1. First, identify the product from the label image: extract the EPA registration number, product name, and manufacturer.
2. Then search the web for complete label data for this product.
3. Return the data as JSON with this exact structure:

{
  "epa_registration_number": "string or null",
  "product_name": "string or null",
  "manufacturer": "string or null",
  "signal_word": "Danger or Warning or Caution or null",
  "active_ingredients": [{"name": "string", "concentration": "string"}],
  "precautionary_statements": ["string"],
  "first_aid": {"eyes": "string", "skin": "string", "ingestion": "string", "inhalation": "string"},
  "storage_and_disposal": "string or null"
}

Return ONLY valid JSON. No markdown fences, no extra text. If you cannot identify the product, return all fields as null.`
